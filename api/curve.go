package api

import (
	"net/http"

	"github.com/banachtech/vasicek/mc"
	"github.com/gin-gonic/gin"
)

type curveRequest struct {
	Params     mc.Vasicek `json:"params"`
	R          float64    `json:"r"`
	Maturities []float64  `json:"maturities" binding:"required,min=1"`
}

type curveResponse struct {
	Maturities []float64 `json:"maturities"`
	Yields     []float64 `json:"yields"`
	Prices     []float64 `json:"prices"`
}

func (server *Server) curve(c *gin.Context) {
	var req curveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prices, err := req.Params.Prices(req.R, req.Maturities)
	if err != nil {
		abortWithError(c, err)
		return
	}
	yields, err := req.Params.YieldCurve(req.R, req.Maturities)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, curveResponse{
		Maturities: req.Maturities,
		Yields:     yields,
		Prices:     prices,
	})
}
