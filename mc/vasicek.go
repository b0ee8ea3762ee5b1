package mc

import (
	"iter"
	"math"
)

// Define Vasicek model dr = A(B - r)dt + Sigma dW.
type Vasicek struct {
	A     float64 `json:"a"`     // mean reversion speed
	B     float64 `json:"b"`     // long-term mean
	Sigma float64 `json:"sigma"` // volatility
}

// Constructor for Vasicek model
func NewVasicek(a, b, sigma float64) (Vasicek, error) {
	m := Vasicek{A: a, B: b, Sigma: sigma}
	if err := m.Validate(); err != nil {
		return Vasicek{}, err
	}
	return m, nil
}

// Validate checks a > 0 and sigma > 0. Pricing and simulation are undefined otherwise.
func (m Vasicek) Validate() error {
	if !(m.A > 0) || math.IsInf(m.A, 1) {
		return invalid("vasicek", "a", m.A, "mean reversion speed must be positive and finite")
	}
	if !(m.Sigma > 0) || math.IsInf(m.Sigma, 1) {
		return invalid("vasicek", "sigma", m.Sigma, "volatility must be positive and finite")
	}
	if math.IsNaN(m.B) || math.IsInf(m.B, 0) {
		return invalid("vasicek", "b", m.B, "long-term mean must be finite")
	}
	return nil
}

// Get parameters as the vector (a, b, sigma).
func (m Vasicek) Get() []float64 {
	return []float64{m.A, m.B, m.Sigma}
}

// Create a model for the given parameter vector (a, b, sigma).
func (m Vasicek) Set(p []float64) Model {
	m.A, m.B, m.Sigma = p[0], p[1], p[2]
	return m
}

// Affine factors A(T) and B(T) of the bond price A(T)exp(-B(T)r).
// A is returned in log form.
func (m Vasicek) factors(T float64) (logA, b float64) {
	a, s2 := m.A, m.Sigma*m.Sigma
	b = -math.Expm1(-a*T) / a
	logA = (b-T)*(a*a*m.B-0.5*s2)/(a*a) - s2*b*b/(4.0*a)
	return logA, b
}

// Price of a zero-coupon bond paying 1 at maturity T for short rate r.
func (m Vasicek) Price(r, T float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return math.NaN(), err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.NaN(), invalid("price", "r", r, "short rate must be finite")
	}
	if math.IsNaN(T) || math.IsInf(T, 0) || T < 0 {
		return math.NaN(), invalid("price", "T", T, "maturity must be finite and non-negative")
	}
	if T == 0 {
		return 1.0, nil
	}
	logA, b := m.factors(T)
	return math.Exp(logA - b*r), nil
}

// Prices returns discount factors for each maturity of the grid.
func (m Vasicek) Prices(r float64, maturities []float64) ([]float64, error) {
	out := make([]float64, len(maturities))
	for i, T := range maturities {
		p, err := m.Price(r, T)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Yield returns the continuously compounded yield -ln(price)/T.
func Yield(price, T float64) (float64, error) {
	if T == 0 || math.IsNaN(T) || math.IsInf(T, 0) || T < 0 {
		return math.NaN(), invalid("yield", "T", T, "maturity must be positive")
	}
	if !(price > 0) || math.IsInf(price, 1) {
		return math.NaN(), &DomainError{Op: "yield", Value: price, Msg: "log of non-positive price"}
	}
	return -math.Log(price) / T, nil
}

// Curve lazily generates the model yield for each maturity, in grid order.
// The sequence can be ranged over any number of times. It stops after
// yielding the first error.
func (m Vasicek) Curve(r float64, maturities []float64) iter.Seq2[float64, error] {
	return func(yield func(float64, error) bool) {
		for _, T := range maturities {
			p, err := m.Price(r, T)
			if err != nil {
				yield(math.NaN(), err)
				return
			}
			y, err := Yield(p, T)
			if err != nil {
				yield(math.NaN(), err)
				return
			}
			if !yield(y, nil) {
				return
			}
		}
	}
}

// YieldCurve collects Curve into a slice aligned with maturities.
func (m Vasicek) YieldCurve(r float64, maturities []float64) ([]float64, error) {
	out := make([]float64, 0, len(maturities))
	for y, err := range m.Curve(r, maturities) {
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}

// Simulate a short rate path from r0 for a given vector of timesteps and
// standard normal variates z, using the Euler-Maruyama scheme.
func (m Vasicek) Path(r0 float64, dt, z []float64) []float64 {
	N := len(dt)
	r := make([]float64, N+1)
	r[0] = r0
	for i := 0; i < N; i++ {
		r[i+1] = r[i] + m.A*(m.B-r[i])*dt[i] + m.Sigma*math.Sqrt(dt[i])*z[i]
	}
	return r
}
