package formula

import (
	"math"

	"fincalc/domain"
)

type RetirementInput struct {
	CurrentAge      int
	RetirementAge   int
	LifeExpectancy  int
	MonthlyExpenses float64
	InflationRate   float64
	ExpectedReturn  float64
}

// RealReturn is the inflation-adjusted rate of return, as a fraction.
func RealReturn(nominal, inflation float64) float64 {
	return (1+nominal/100)/(1+inflation/100) - 1
}

// Retirement estimates the corpus needed at retirement to fund inflated
// expenses until life expectancy, and the monthly SIP that builds it.
func Retirement(in RetirementInput) domain.Result {
	yearsToRetirement := in.RetirementAge - in.CurrentAge
	retirementYears := in.LifeExpectancy - in.RetirementAge

	futureMonthlyExpenses := in.MonthlyExpenses * math.Pow(1+in.InflationRate/100, float64(yearsToRetirement))
	annualExpenses := futureMonthlyExpenses * 12

	// A non-positive real return cannot be discounted; the corpus is then a
	// plain multiple of the yearly expense.
	realRate := RealReturn(in.ExpectedReturn, in.InflationRate)
	var corpus float64
	if realRate <= 0 {
		corpus = annualExpenses * float64(retirementYears)
	} else {
		corpus = annualExpenses * (1 - math.Pow(1+realRate, -float64(retirementYears))) / realRate
	}

	// Contributions are made at the start of each month (annuity due).
	i := in.ExpectedReturn / 12 / 100
	months := float64(yearsToRetirement * 12)
	var monthlySIP float64
	if i == 0 {
		monthlySIP = corpus / months
	} else {
		monthlySIP = corpus / (((math.Pow(1+i, months) - 1) / i) * (1 + i))
	}

	return domain.Result{
		"corpusRequired":        currency(corpus),
		"monthlySIPRequired":    currency(monthlySIP),
		"futureMonthlyExpenses": currency(futureMonthlyExpenses),
		"yearsToRetirement":     float64(yearsToRetirement),
		"retirementYears":       float64(retirementYears),
	}
}
