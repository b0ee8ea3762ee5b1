package mainfuncs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/banachtech/vasicek/data"
	"github.com/banachtech/vasicek/mc"
	"github.com/banachtech/vasicek/util"
)

type CalibrationResult struct {
	Params       mc.Vasicek `json:"params"`
	Observations int        `json:"observations"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	LastRate     float64    `json:"last_rate"`
}

// Calibrate fits the whole series, or every rolling window when window > 0.
func Calibrate(ctx context.Context, w io.Writer, s *data.Series, dt float64, window int, opts data.RollingOptions) error {
	if window > 0 {
		estimates, err := data.Rolling(ctx, s, window, dt, opts)
		if err != nil {
			return err
		}
		return writeJSON(w, estimates)
	}

	m, err := s.Calibrate(dt, opts.Calibrate...)
	if err != nil {
		return err
	}
	start, _ := s.At(0)
	end, last := s.Last()
	return writeJSON(w, CalibrationResult{
		Params:       m,
		Observations: s.Len(),
		Start:        start,
		End:          end,
		LastRate:     last,
	})
}

// CalendarDt is the average NYSE business day year fraction between
// consecutive observations of s.
func CalendarDt(s *data.Series) (float64, error) {
	if s.Len() < 2 {
		return 0, &mc.InputError{Op: "dt", Field: "series", Value: float64(s.Len()), Msg: "need at least 2 observations"}
	}
	hols, err := util.Hols(util.NYSE)
	if err != nil {
		return 0, err
	}
	start, _ := s.At(0)
	end, _ := s.Last()
	if !util.NYSECovers(start, end) {
		return 0, &mc.InputError{Op: "dt", Field: "series", Value: float64(start.Year()), Msg: fmt.Sprintf("holiday calendar covers %d to %d only", util.NYSEFirstYear, util.NYSELastYear)}
	}
	yf, err := util.YearFraction(start, end, hols)
	if err != nil {
		return 0, err
	}
	if yf == 0 {
		return 0, &mc.InputError{Op: "dt", Field: "series", Value: yf, Msg: "no business days between observations"}
	}
	return yf / float64(s.Len()-1), nil
}
