package api

import (
	"errors"
	"net/http"

	"github.com/banachtech/vasicek/mc"
	"github.com/gin-gonic/gin"
)

type calibrateRequest struct {
	SeriesID      string    `json:"series_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Rates         []float64 `json:"rates"`
	Dt            float64   `json:"dt"`
	MaxIterations int       `json:"max_iterations" binding:"min=0"`
}

type calibrateResponse struct {
	Params       mc.Vasicek `json:"params"`
	Observations int        `json:"observations"`
	Dt           float64    `json:"dt"`
	LastRate     float64    `json:"last_rate"`
}

// calibrate fits the model either to a stored series or to inline rates.
func (server *Server) calibrate(c *gin.Context) {
	var req calibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.SeriesID == "" && len(req.Rates) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("either series_id or rates is required")))
		return
	}

	rates := req.Rates
	if req.SeriesID != "" {
		from, to, err := parseRange(req.From, req.To)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		s, err := server.store.GetSeries(c, req.SeriesID, from, to)
		if err != nil {
			abortWithError(c, err)
			return
		}
		rates = s.Rates()
	}

	dt := req.Dt
	if dt == 0 {
		dt = server.config.Model.Dt
	}
	var opts []mc.CalibrateOption
	if req.MaxIterations > 0 {
		opts = append(opts, mc.WithMaxIterations(req.MaxIterations))
	}
	m, err := mc.Calibrate(rates, dt, opts...)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, calibrateResponse{
		Params:       m,
		Observations: len(rates),
		Dt:           dt,
		LastRate:     rates[len(rates)-1],
	})
}
