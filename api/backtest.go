package api

import (
	"net/http"
	"time"

	"github.com/banachtech/vasicek/backtest"
	"github.com/banachtech/vasicek/data"
	"github.com/gin-gonic/gin"
)

type backtestRequest struct {
	SeriesID     string    `json:"series_id" binding:"required"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	MarketPrices []float64 `json:"market_prices" binding:"required,min=2"`
	Maturity     float64   `json:"maturity" binding:"min=0"`
	Window       int       `json:"window" binding:"min=0"`
	Dt           float64   `json:"dt" binding:"min=0"`
	Threshold    float64   `json:"threshold" binding:"min=0"`
	Capital      float64   `json:"capital" binding:"min=0"`
	IncludeRows  bool      `json:"include_rows"`
}

type backtestResponse struct {
	Config  backtest.Config  `json:"config"`
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	Summary backtest.Summary `json:"summary"`
	Rows    []backtest.Row   `json:"rows,omitempty"`
}

// backtest recalibrates the model on a rolling window of the stored series,
// prices the bond with each day's model and runs the long/short rule against
// the supplied market prices, one per window end date.
func (server *Server) backtest(c *gin.Context) {
	var req backtestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	cfg := server.config
	if req.Maturity == 0 {
		req.Maturity = cfg.Backtest.Maturity
	}
	if req.Window == 0 {
		req.Window = cfg.Backtest.Window
	}
	if req.Dt == 0 {
		req.Dt = cfg.Model.Dt
	}
	if req.Threshold == 0 {
		req.Threshold = cfg.Backtest.Threshold
	}
	if req.Capital == 0 {
		req.Capital = cfg.Backtest.Capital
	}

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

	estimates, err := data.Rolling(c.Request.Context(), s, req.Window, req.Dt, data.RollingOptions{Workers: cfg.Model.Workers})
	if err != nil {
		abortWithError(c, err)
		return
	}
	model, err := data.ModelPrices(estimates, req.Maturity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	dates := make([]time.Time, len(estimates))
	for i, e := range estimates {
		dates[i] = e.Date
	}

	res, err := backtest.Run(dates, req.MarketPrices, model, backtest.Config{Threshold: req.Threshold, Capital: req.Capital})
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := backtestResponse{
		Config:  res.Config,
		Start:   dates[0],
		End:     dates[len(dates)-1],
		Summary: res.Summary,
	}
	if req.IncludeRows {
		resp.Rows = res.Rows
	}
	c.JSON(http.StatusOK, resp)
}
