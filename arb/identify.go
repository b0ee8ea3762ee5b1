package arb

import (
	"math"

	"github.com/banachtech/vasicek/mc"
)

// DefaultThreshold is the yield spread beyond which a maturity is flagged.
const DefaultThreshold = 0.0025

// Trade direction for a maturity.
const (
	Sell = -1
	Hold = 0
	Buy  = 1
)

// Mispricing compares the market and model yield at one maturity.
type Mispricing struct {
	Maturity    float64 `json:"maturity"`
	MarketYield float64 `json:"market_yield"`
	ModelYield  float64 `json:"model_yield"`
	Spread      float64 `json:"spread"`
	Signal      int     `json:"signal"`
}

// Report holds one Mispricing per maturity, in grid order.
type Report []Mispricing

// Identify flags maturities where the market yield differs from the model
// yield by more than threshold. A market yield above the model yield means the
// bond is cheap (Buy), below means rich (Sell). Spreads exactly at the
// threshold are not flagged.
func Identify(marketYields []float64, r float64, m mc.Vasicek, maturities []float64, threshold float64) (Report, error) {
	if len(marketYields) != len(maturities) {
		return nil, &mc.InputError{
			Op:    "identify",
			Field: "market yields",
			Value: float64(len(marketYields)),
			Msg:   "length must match the maturity grid",
		}
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, &mc.InputError{Op: "identify", Field: "threshold", Value: threshold, Msg: "must be non-negative"}
	}

	report := make(Report, 0, len(maturities))
	i := 0
	for y, err := range m.Curve(r, maturities) {
		if err != nil {
			return nil, err
		}
		mkt := marketYields[i]
		if math.IsNaN(mkt) || math.IsInf(mkt, 0) {
			return nil, &mc.InputError{Op: "identify", Field: "market yield", Value: mkt, Msg: "must be finite"}
		}
		spread := mkt - y
		report = append(report, Mispricing{
			Maturity:    maturities[i],
			MarketYield: mkt,
			ModelYield:  y,
			Spread:      spread,
			Signal:      signal(spread, threshold),
		})
		i++
	}
	return report, nil
}

func signal(spread, threshold float64) int {
	switch {
	case spread > threshold:
		return Buy
	case spread < -threshold:
		return Sell
	}
	return Hold
}

// Opportunities returns the flagged maturities only.
func (r Report) Opportunities() Report {
	out := Report{}
	for _, m := range r {
		if m.Signal != Hold {
			out = append(out, m)
		}
	}
	return out
}

// Signals returns the signal vector aligned with the maturity grid.
func (r Report) Signals() []int {
	out := make([]int, len(r))
	for i, m := range r {
		out[i] = m.Signal
	}
	return out
}
