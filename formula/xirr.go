package formula

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"fincalc/domain"
)

// Cashflow is a dated signed amount: negative for money invested, positive
// for money received.
type Cashflow struct {
	Date   time.Time
	Amount float64
}

// XIRRSolution is the outcome of SolveXIRR. Rate is a fraction (0.1 = 10%)
// and is NaN when Converged is false.
type XIRRSolution struct {
	Rate      float64
	Converged bool
}

const (
	xirrTolerance       = 1e-6
	newtonGuess         = 0.1
	newtonMaxIterations = 100
	newtonMinDerivative = 1e-12
	newtonRateFloor     = -0.999999
	bisectionLow        = -0.9999
	bisectionHigh       = 1.0
	bisectionExpansions = 50
	bisectionMaxSteps   = 200
	millisPerDay        = 24 * 60 * 60 * 1000
	daysPerYear         = 365.0
)

// yearFractions returns, for every cashflow, the years elapsed since the
// first one on a 365-day basis. Unix milliseconds are used so that schedules
// spanning centuries do not overflow time.Duration.
func yearFractions(flows []Cashflow) []float64 {
	first := flows[0].Date.UnixMilli()
	out := make([]float64, len(flows))
	for n, f := range flows {
		days := float64(f.Date.UnixMilli()-first) / millisPerDay
		out[n] = days / daysPerYear
	}
	return out
}

// SolveXIRR finds the annual rate at which the net present value of flows is
// zero. Flows are sorted by date first. Newton-Raphson is tried from 10%; if
// it fails, bisection runs on [-0.9999, high] with high doubled until the
// bracket changes sign. It never panics and reports failure through
// Converged.
func SolveXIRR(flows []Cashflow) XIRRSolution {
	if len(flows) == 0 {
		return XIRRSolution{Rate: math.NaN()}
	}

	sorted := make([]Cashflow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date.Before(sorted[b].Date)
	})

	years := yearFractions(sorted)
	xnpv := func(rate float64) float64 {
		sum := 0.0
		for n, f := range sorted {
			sum += f.Amount / math.Pow(1+rate, years[n])
		}
		return sum
	}
	xnpvDerivative := func(rate float64) float64 {
		sum := 0.0
		for n, f := range sorted {
			sum -= years[n] * f.Amount / math.Pow(1+rate, years[n]+1)
		}
		return sum
	}

	if s := solveNewton(xnpv, xnpvDerivative); s.Converged {
		return s
	}
	return solveBisection(xnpv)
}

func solveNewton(f, df func(float64) float64) XIRRSolution {
	rate := newtonGuess
	for iter := 0; iter < newtonMaxIterations; iter++ {
		v := f(rate)
		if math.Abs(v) < xirrTolerance {
			return XIRRSolution{Rate: rate, Converged: true}
		}

		d := df(rate)
		if math.IsNaN(d) || math.IsInf(d, 0) || math.Abs(d) < newtonMinDerivative {
			break
		}

		next := rate - v/d
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= newtonRateFloor {
			break
		}
		rate = next
	}
	return XIRRSolution{Rate: math.NaN()}
}

func solveBisection(f func(float64) float64) XIRRSolution {
	low, high := bisectionLow, bisectionHigh
	fLow, fHigh := f(low), f(high)

	for n := 0; fLow*fHigh > 0 && n < bisectionExpansions; n++ {
		high *= 2
		fHigh = f(high)
	}
	if fLow*fHigh > 0 {
		return XIRRSolution{Rate: math.NaN()}
	}

	for step := 0; step < bisectionMaxSteps; step++ {
		mid := (low + high) / 2
		fMid := f(mid)
		if math.Abs(fMid) < xirrTolerance {
			return XIRRSolution{Rate: mid, Converged: true}
		}
		if fLow*fMid > 0 {
			low, fLow = mid, fMid
		} else {
			high = mid
		}
	}
	// The bracket is narrower than float precision by now.
	return XIRRSolution{Rate: (low + high) / 2, Converged: true}
}

// XIRR solves flows and shapes the result. Totals are derived from the signs
// of the flows and are returned even when the solver does not converge, in
// which case the xirr field is omitted and ok is false.
func XIRR(flows []Cashflow) (r domain.Result, ok bool) {
	invested, value := 0.0, 0.0
	for _, f := range flows {
		if f.Amount < 0 {
			invested += -f.Amount
		} else if f.Amount > 0 {
			value += f.Amount
		}
	}

	inv := currency(invested)
	val := currency(value)
	r = domain.Result{
		"totalInvested":  inv,
		"totalValue":     val,
		"absoluteReturn": val - inv,
	}

	s := SolveXIRR(flows)
	if !s.Converged || math.IsNaN(s.Rate) || math.IsInf(s.Rate, 0) {
		return r, false
	}
	r["xirr"] = percent(s.Rate * 100)
	return r, true
}

// Frequency is the interval between recurring investments.
type Frequency string

const (
	Every14Days Frequency = "14-days"
	Monthly     Frequency = "monthly"
	Quarterly   Frequency = "quarterly"
	HalfYearly  Frequency = "half-yearly"
	Yearly      Frequency = "yearly"
)

// MaxSchedulePeriods caps the number of recurring investments in a schedule.
const MaxSchedulePeriods = 10000

var (
	ErrUnknownFrequency = errors.New("invalid investment frequency")
	ErrScheduleTooLong  = errors.New("investment schedule is too long for calculation")
	ErrMaturityOrder    = errors.New("maturity date must be after start date")
)

// Next advances t by one period. Calendar-month frequencies normalise day
// overflow the way time.AddDate does (31 Jan + 1 month = 2 or 3 Mar).
func (f Frequency) Next(t time.Time) (time.Time, error) {
	switch f {
	case Every14Days:
		return t.AddDate(0, 0, 14), nil
	case Monthly:
		return t.AddDate(0, 1, 0), nil
	case Quarterly:
		return t.AddDate(0, 3, 0), nil
	case HalfYearly:
		return t.AddDate(0, 6, 0), nil
	case Yearly:
		return t.AddDate(0, 12, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
}

// BuildSchedule lays out one outflow of recurringAmount at start and at every
// period after it that falls strictly before maturity, followed by a single
// inflow of maturityAmount at maturity.
func BuildSchedule(start time.Time, freq Frequency, recurringAmount float64, maturity time.Time, maturityAmount float64) ([]Cashflow, error) {
	if !start.Before(maturity) {
		return nil, ErrMaturityOrder
	}
	if _, err := freq.Next(start); err != nil {
		return nil, err
	}

	flows := []Cashflow{{Date: start, Amount: -recurringAmount}}
	current := start
	for {
		next, _ := freq.Next(current)
		if !next.Before(maturity) {
			break
		}
		flows = append(flows, Cashflow{Date: next, Amount: -recurringAmount})
		if len(flows) > MaxSchedulePeriods {
			return nil, ErrScheduleTooLong
		}
		current = next
	}

	return append(flows, Cashflow{Date: maturity, Amount: maturityAmount}), nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reads an ISO 8601 date or timestamp. Values without a zone are
// taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
