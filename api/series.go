package api

import (
	"net/http"
	"time"

	"github.com/banachtech/vasicek/data"
	"github.com/gin-gonic/gin"
)

type seriesQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type seriesResponse struct {
	SeriesID string      `json:"series_id"`
	Dates    []time.Time `json:"dates"`
	Rates    []float64   `json:"rates"`
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	var f, t time.Time
	var err error
	if from != "" {
		if f, err = time.Parse(data.Layout, from); err != nil {
			return f, t, err
		}
	}
	if to != "" {
		if t, err = time.Parse(data.Layout, to); err != nil {
			return f, t, err
		}
	}
	return f, t, nil
}

func (server *Server) getSeries(c *gin.Context) {
	var q seriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	from, to, err := parseRange(q.From, q.To)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	id := c.Param("id")
	s, err := server.store.GetSeries(c, id, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, seriesResponse{SeriesID: id, Dates: s.Dates(), Rates: s.Rates()})
}
