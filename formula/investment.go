package formula

import (
	"math"

	"fincalc/domain"
)

// monthlyEquivalentRate converts an annual percentage into the monthly rate
// that compounds to the same annual growth.
func monthlyEquivalentRate(annualRate float64) float64 {
	return math.Pow(1+annualRate/100, 1.0/12) - 1
}

// SIP computes the maturity of a monthly investment, each instalment growing
// from the start of its month: M = P × ((1+i)^n − 1)/i × (1+i).
func SIP(monthlyInvestment, annualRate, years float64) domain.Result {
	i := monthlyEquivalentRate(annualRate)
	months := years * 12
	totalInvestment := monthlyInvestment * months

	maturityAmount := totalInvestment
	if i != 0 {
		maturityAmount = monthlyInvestment * ((math.Pow(1+i, months) - 1) / i) * (1 + i)
	}

	return growthResult(totalInvestment, maturityAmount)
}

// Lumpsum compounds a one-time investment annually.
func Lumpsum(principal, annualRate, years float64) domain.Result {
	maturityAmount := principal * math.Pow(1+annualRate/100, years)
	return growthResult(principal, maturityAmount)
}

// MutualFundReturns projects a one-time mutual fund investment at a constant
// annual return.
func MutualFundReturns(principal, annualRate, years float64) domain.Result {
	return Lumpsum(principal, annualRate, years)
}

// SWP simulates a withdrawal plan month by month: growth first, then the
// withdrawal. The balance is allowed to go negative.
func SWP(initialInvestment, monthlyWithdrawal, annualRate, years float64) domain.Result {
	i := monthlyEquivalentRate(annualRate)
	months := int(math.Ceil(years * 12))

	balance := initialInvestment
	totalWithdrawn := 0.0
	for m := 0; m < months; m++ {
		balance *= 1 + i
		balance -= monthlyWithdrawal
		totalWithdrawn += monthlyWithdrawal
	}

	return domain.Result{
		"initialInvestment": currency(initialInvestment),
		"totalWithdrawn":    currency(totalWithdrawn),
		"finalBalance":      currency(balance),
	}
}

// StepUpSIP grows the monthly instalment by annualStepUp percent every year
// and compounds each instalment to the end of the horizon.
func StepUpSIP(initialMonthlyInvestment, annualStepUp, annualRate float64, years int) domain.Result {
	i := monthlyEquivalentRate(annualRate)
	stepUp := annualStepUp / 100

	maturityAmount := 0.0
	totalInvestment := 0.0
	current := initialMonthlyInvestment

	for year := 0; year < years; year++ {
		for month := 0; month < 12; month++ {
			totalInvestment += current
			monthsRemaining := (years-year)*12 - month
			maturityAmount += current * math.Pow(1+i, float64(monthsRemaining))
		}
		current *= 1 + stepUp
	}

	r := growthResult(totalInvestment, maturityAmount)
	r["finalMonthlyInvestment"] = currency(current)
	return r
}

// CAGR returns the compound annual growth rate between two values, in percent.
func CAGR(initialValue, finalValue, years float64) domain.Result {
	cagr := (math.Pow(finalValue/initialValue, 1/years) - 1) * 100
	absoluteReturn := finalValue - initialValue
	totalReturnPercentage := absoluteReturn / initialValue * 100

	return domain.Result{
		"initialValue":          currency(initialValue),
		"finalValue":            currency(finalValue),
		"cagr":                  percent(cagr),
		"absoluteReturn":        currency(absoluteReturn),
		"totalReturnPercentage": percent(totalReturnPercentage),
		"years":                 years,
	}
}

// growthResult shapes the common invested/gained/maturity triple. The gain is
// taken from the rounded figures so that it always equals their difference.
func growthResult(totalInvestment, maturityAmount float64) domain.Result {
	invested := currency(totalInvestment)
	maturity := currency(maturityAmount)
	return domain.Result{
		"totalInvestment": invested,
		"wealthGained":    maturity - invested,
		"maturityAmount":  maturity,
	}
}
