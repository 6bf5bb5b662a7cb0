package formula

import (
	"math"

	"fincalc/domain"
)

// FD compounds a fixed deposit compoundingFrequency times a year.
func FD(principal, annualRate, years, compoundingFrequency float64) domain.Result {
	n := compoundingFrequency
	maturityAmount := principal * math.Pow(1+annualRate/100/n, n*years)

	p := currency(principal)
	m := currency(maturityAmount)
	return domain.Result{
		"principal":      p,
		"interestEarned": m - p,
		"maturityAmount": m,
		"interestRate":   annualRate,
	}
}

// RD compounds every monthly deposit quarterly for its own remaining term,
// counted in fractional quarters. Each deposit's maturity is rounded before
// it is added to the total.
func RD(monthlyDeposit, annualRate, years float64) domain.Result {
	months := int(math.Round(years * 12))
	quarterlyRate := annualRate / 100 / 4

	maturityAmount := 0.0
	for m := 0; m < months; m++ {
		quartersRemaining := float64(months-m) / 3
		maturityAmount += currency(monthlyDeposit * math.Pow(1+quarterlyRate, quartersRemaining))
	}

	invested := currency(monthlyDeposit * float64(months))
	matured := currency(maturityAmount)
	return domain.Result{
		"monthlyDeposit":  currency(monthlyDeposit),
		"totalInvestment": invested,
		"interestEarned":  matured - invested,
		"maturityAmount":  matured,
		"interestRate":    annualRate,
	}
}

// SimpleInterest computes P × R × T / 100.
func SimpleInterest(principal, annualRate, years float64) domain.Result {
	interest := principal * annualRate * years / 100
	return domain.Result{
		"principal":    currency(principal),
		"interest":     currency(interest),
		"totalAmount":  currency(principal + interest),
		"interestRate": annualRate,
		"years":        years,
	}
}

// CompoundInterest computes P(1 + r/n)^(nt) and compares it with simple
// interest over the same period.
func CompoundInterest(principal, annualRate, years, compoundingFrequency float64) domain.Result {
	n := compoundingFrequency
	totalAmount := principal * math.Pow(1+annualRate/100/n, n*years)
	compound := totalAmount - principal
	simple := principal * annualRate * years / 100

	return domain.Result{
		"principal":          currency(principal),
		"compoundInterest":   currency(compound),
		"totalAmount":        currency(totalAmount),
		"simpleInterest":     currency(simple),
		"additionalInterest": currency(compound - simple),
		"interestRate":       annualRate,
	}
}

// Inflation projects the future cost of an amount and the purchasing power
// left, in percent.
func Inflation(currentAmount, inflationRate, years float64) domain.Result {
	futureValue := currentAmount * math.Pow(1+inflationRate/100, years)

	return domain.Result{
		"currentAmount":   currency(currentAmount),
		"futureValue":     currency(futureValue),
		"valueErosion":    currency(futureValue - currentAmount),
		"purchasingPower": percent(currentAmount / futureValue * 100),
		"inflationRate":   inflationRate,
		"years":           years,
	}
}
