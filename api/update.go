package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/banachtech/vasicek/data"
	"github.com/gin-gonic/gin"
)

type updateSeriesRequest struct {
	// From is the first date fetched when nothing is stored yet.
	From string `json:"from"`
}

type updateSeriesResponse struct {
	SeriesID  string    `json:"series_id"`
	Inserted  int       `json:"inserted"`
	UpdatedAt time.Time `json:"updated_at"`
}

// updateSeries pulls observations newer than the latest stored date.
func (server *Server) updateSeries(c *gin.Context) {
	if server.source == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse(errors.New("series updates are not configured")))
		return
	}
	var req updateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	from, _, err := parseRange(req.From, "")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	seriesID := c.Param("id")
	n, err := data.Update(c.Request.Context(), server.source, server.store, seriesID, from)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updateSeriesResponse{
		SeriesID:  seriesID,
		Inserted:  n,
		UpdatedAt: time.Now(),
	})
}
