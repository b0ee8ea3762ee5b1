package api

import (
	"fmt"
	"net/http"

	"github.com/banachtech/vasicek/mc"
	"github.com/gin-gonic/gin"
	"gonum.org/v1/gonum/mat"
)

type simulateRequest struct {
	Params       mc.Vasicek `json:"params"`
	R0           float64    `json:"r0"`
	Horizon      float64    `json:"horizon" binding:"min=0"`
	Steps        int        `json:"steps" binding:"min=0"`
	Paths        int        `json:"paths" binding:"min=0"`
	Seed         *uint64    `json:"seed"`
	IncludePaths bool       `json:"include_paths"`
}

type simulateResponse struct {
	Dt    float64   `json:"dt"`
	Steps int       `json:"steps"`
	Mean  []float64 `json:"mean"`
	Std   []float64 `json:"std"`
	// Paths holds one slice per simulated path when requested.
	Paths [][]float64 `json:"paths,omitempty"`
}

func (server *Server) simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Horizon == 0 {
		req.Horizon = server.config.Model.Horizon
	}
	if req.Steps == 0 {
		req.Steps = server.config.Model.Steps
	}
	if req.Paths == 0 {
		req.Paths = server.config.Model.Paths
	}
	if max := server.config.Model.MaxPaths; max > 0 && req.Paths > 0 && req.Steps > max/req.Paths {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(fmt.Errorf("steps*paths must not exceed %d", max)))
		return
	}

	paths, err := req.Params.Paths(req.R0, req.Horizon, req.Steps, req.Paths, mc.NewSource(req.Seed), mc.WithWorkers(server.config.Model.Workers))
	if err != nil {
		abortWithError(c, err)
		return
	}

	mean, std := mc.PathStats(paths)
	resp := simulateResponse{
		Dt:    req.Horizon / float64(req.Steps),
		Steps: req.Steps,
		Mean:  mean,
		Std:   std,
	}
	if req.IncludePaths {
		_, n := paths.Dims()
		resp.Paths = make([][]float64, n)
		for j := 0; j < n; j++ {
			resp.Paths[j] = mat.Col(nil, j, paths)
		}
	}
	c.JSON(http.StatusOK, resp)
}
