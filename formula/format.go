// Package formula implements the pure financial formulas behind every
// calculator. Functions take validated numeric inputs and return rounded
// results; none of them perform I/O or keep state between calls.
package formula

import (
	"math"

	"github.com/shopspring/decimal"

	"fincalc/domain"
)

// Format rounds value to the precision of kind. Text values are returned
// unchanged. Non-finite values pass through so callers can detect them.
func Format(value float64, kind domain.FormatKind) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	switch kind {
	case domain.FormatCurrency:
		return roundPlaces(value, 0)
	case domain.FormatCurrency2, domain.FormatPercentage:
		return roundPlaces(value, 2)
	}
	return value
}

func roundPlaces(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

func currency(v float64) float64  { return Format(v, domain.FormatCurrency) }
func currency2(v float64) float64 { return Format(v, domain.FormatCurrency2) }
func percent(v float64) float64   { return Format(v, domain.FormatPercentage) }
