package api

import (
	"net/http"

	"github.com/banachtech/vasicek/arb"
	"github.com/banachtech/vasicek/mc"
	"github.com/gin-gonic/gin"
)

type arbitrageRequest struct {
	Params       mc.Vasicek `json:"params"`
	R            float64    `json:"r"`
	Maturities   []float64  `json:"maturities" binding:"required,min=1"`
	MarketYields []float64  `json:"market_yields" binding:"required,min=1"`
	Threshold    *float64   `json:"threshold"`
}

type arbitrageResponse struct {
	Threshold     float64    `json:"threshold"`
	Report        arb.Report `json:"report"`
	Opportunities arb.Report `json:"opportunities"`
}

func (server *Server) arbitrage(c *gin.Context) {
	var req arbitrageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	threshold := server.config.Model.Threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	report, err := arb.Identify(req.MarketYields, req.R, req.Params, req.Maturities, threshold)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, arbitrageResponse{
		Threshold:     threshold,
		Report:        report,
		Opportunities: report.Opportunities(),
	})
}
