package formula

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSolveXIRRSingleInvestment(t *testing.T) {
	s := SolveXIRR([]Cashflow{
		{Date: date(2020, 1, 1), Amount: -100000},
		{Date: date(2022, 1, 1), Amount: 121000},
	})

	require.True(t, s.Converged)
	assert.InDelta(t, 0.0999, s.Rate, 0.0005)
}

func TestSolveXIRRSortsByDate(t *testing.T) {
	s := SolveXIRR([]Cashflow{
		{Date: date(2022, 1, 1), Amount: 121000},
		{Date: date(2020, 1, 1), Amount: -100000},
	})

	require.True(t, s.Converged)
	assert.Greater(t, s.Rate, 0.0)
}

func TestSolveXIRRNoSignChange(t *testing.T) {
	s := SolveXIRR([]Cashflow{
		{Date: date(2020, 1, 1), Amount: -100000},
		{Date: date(2022, 1, 1), Amount: -5},
	})

	assert.False(t, s.Converged)
	assert.True(t, math.IsNaN(s.Rate))
}

func TestSolveXIRREmpty(t *testing.T) {
	assert.False(t, SolveXIRR(nil).Converged)
}

func TestSolveXIRRFallsBackToBisection(t *testing.T) {
	// A 10% loss within a month sends the first Newton step below -100%.
	s := SolveXIRR([]Cashflow{
		{Date: date(2020, 1, 1), Amount: -100000},
		{Date: date(2020, 2, 1), Amount: 90000},
	})

	require.True(t, s.Converged)
	assert.InDelta(t, -0.7108, s.Rate, 0.001)
}

func TestXIRRMonthlySchedule(t *testing.T) {
	flows, err := BuildSchedule(date(2020, 1, 1), Monthly, 10000, date(2021, 1, 1), 132000)
	require.NoError(t, err)
	require.Len(t, flows, 13)

	r, ok := XIRR(flows)
	require.True(t, ok)
	assert.Equal(t, 18.87, r["xirr"])
	assert.Equal(t, 120000.0, r["totalInvested"])
	assert.Equal(t, 132000.0, r["totalValue"])
	assert.Equal(t, 12000.0, r["absoluteReturn"])
}

func TestXIRRDivergenceKeepsTotals(t *testing.T) {
	r, ok := XIRR([]Cashflow{
		{Date: date(2020, 1, 1), Amount: -100000},
		{Date: date(2022, 1, 1), Amount: -5},
	})

	assert.False(t, ok)
	assert.NotContains(t, r, "xirr")
	assert.Equal(t, 100005.0, r["totalInvested"])
	assert.Equal(t, -100005.0, r["absoluteReturn"])
}

func TestBuildSchedule(t *testing.T) {
	tests := []struct {
		freq  Frequency
		flows int
		last  time.Time
	}{
		{Every14Days, 27, date(2020, 12, 30)},
		{Monthly, 12, date(2020, 12, 1)},
		{Quarterly, 4, date(2020, 10, 1)},
		{HalfYearly, 2, date(2020, 7, 1)},
		{Yearly, 1, date(2020, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			flows, err := BuildSchedule(date(2020, 1, 1), tt.freq, 1000, date(2021, 1, 1), 20000)
			require.NoError(t, err)
			require.Len(t, flows, tt.flows+1)

			assert.Equal(t, tt.last, flows[tt.flows-1].Date)
			assert.Equal(t, -1000.0, flows[0].Amount)
			assert.Equal(t, Cashflow{Date: date(2021, 1, 1), Amount: 20000}, flows[tt.flows])
		})
	}
}

func TestBuildScheduleMonthEndOverflow(t *testing.T) {
	flows, err := BuildSchedule(date(2021, 1, 31), Monthly, 1, date(2021, 4, 1), 5)
	require.NoError(t, err)

	assert.Equal(t, date(2021, 3, 3), flows[1].Date)
}

func TestBuildScheduleErrors(t *testing.T) {
	_, err := BuildSchedule(date(2021, 1, 1), Monthly, 1, date(2021, 1, 1), 1)
	assert.ErrorIs(t, err, ErrMaturityOrder)

	_, err = BuildSchedule(date(2020, 1, 1), Frequency("weekly"), 1, date(2021, 1, 1), 1)
	assert.ErrorIs(t, err, ErrUnknownFrequency)

	_, err = BuildSchedule(date(1500, 1, 1), Every14Days, 1, date(2100, 1, 1), 1)
	assert.ErrorIs(t, err, ErrScheduleTooLong)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2020-01-01", "2020-01-01T00:00:00Z", " 2020-01-01T00:00:00 "} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, date(2020, 1, 1), d)
	}

	_, err := ParseDate("01/02/2020")
	assert.Error(t, err)
}
