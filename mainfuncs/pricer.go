package mainfuncs

import (
	"fmt"
	"io"

	"github.com/banachtech/vasicek/arb"
	"github.com/banachtech/vasicek/mc"
	"github.com/banachtech/vasicek/util"
	"gonum.org/v1/gonum/mat"
)

type CurveResult struct {
	Maturities []float64 `json:"maturities"`
	Yields     []float64 `json:"yields"`
	Prices     []float64 `json:"prices"`
}

// Curve prices zero coupon bonds for every maturity of the scenario.
func Curve(w io.Writer, sc Scenario) error {
	yields, err := sc.Params.YieldCurve(sc.R, sc.Maturities)
	if err != nil {
		return err
	}
	prices, err := sc.Params.Prices(sc.R, sc.Maturities)
	if err != nil {
		return err
	}
	return writeJSON(w, CurveResult{Maturities: sc.Maturities, Yields: yields, Prices: prices})
}

type ArbitrageResult struct {
	Threshold     float64    `json:"threshold"`
	Report        arb.Report `json:"report"`
	Opportunities arb.Report `json:"opportunities"`
}

// Arbitrage compares the scenario's market yields with the model curve.
// threshold applies when the scenario does not set one.
func Arbitrage(w io.Writer, sc Scenario, threshold float64) error {
	if sc.Threshold != nil {
		threshold = *sc.Threshold
	}
	report, err := arb.Identify(sc.MarketYields, sc.R, sc.Params, sc.Maturities, threshold)
	if err != nil {
		return err
	}
	return writeJSON(w, ArbitrageResult{Threshold: threshold, Report: report, Opportunities: report.Opportunities()})
}

type SimulationResult struct {
	Dt       float64   `json:"dt"`
	Steps    int       `json:"steps"`
	Paths    int       `json:"paths"`
	Mean     []float64 `json:"mean"`
	Std      []float64 `json:"std"`
	Terminal []float64 `json:"terminal"`
}

// Simulate runs the scenario's Monte Carlo paths. Zero horizon, steps or paths
// fall back to cfg.
func Simulate(w io.Writer, sc Scenario, cfg util.ModelConfig) error {
	if sc.Horizon == 0 {
		sc.Horizon = cfg.Horizon
	}
	if sc.Steps == 0 {
		sc.Steps = cfg.Steps
	}
	if sc.Paths == 0 {
		sc.Paths = cfg.Paths
	}
	if cfg.MaxPaths > 0 && sc.Paths > 0 && sc.Steps > cfg.MaxPaths/sc.Paths {
		return fmt.Errorf("simulate: steps*paths must not exceed %d", cfg.MaxPaths)
	}

	paths, err := sc.Params.Paths(sc.R, sc.Horizon, sc.Steps, sc.Paths, mc.NewSource(sc.Seed), mc.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	mean, std := mc.PathStats(paths)
	return writeJSON(w, SimulationResult{
		Dt:       sc.Horizon / float64(sc.Steps),
		Steps:    sc.Steps,
		Paths:    sc.Paths,
		Mean:     mean,
		Std:      std,
		Terminal: mat.Row(nil, sc.Steps, paths),
	})
}
