package formula

import (
	"math"

	"fincalc/domain"
)

// emiAmount returns the equated monthly instalment for a principal repaid
// over months at a monthly rate i. A zero rate splits the principal evenly.
func emiAmount(principal, i, months float64) float64 {
	if i == 0 {
		return principal / months
	}
	factor := math.Pow(1+i, months)
	return principal * i * factor / (factor - 1)
}

// EMI computes the monthly instalment of a reducing-balance loan.
// Fractional years yield fractional month counts.
func EMI(principal, annualRate, years float64) domain.Result {
	months := years * 12
	emi := emiAmount(principal, annualRate/12/100, months)

	p := currency(principal)
	total := currency(emi * months)
	return domain.Result{
		"emi":           currency(emi),
		"principal":     p,
		"totalInterest": total - p,
		"totalPayment":  total,
		"interestRate":  annualRate,
	}
}

// HomeLoanEMI is EMI with the principal also reported as loanAmount.
func HomeLoanEMI(loanAmount, annualRate, years float64) domain.Result {
	r := EMI(loanAmount, annualRate, years)
	r["loanAmount"] = r["principal"]
	return r
}

// CarLoanEMI is EMI with the principal also reported as loanAmount.
func CarLoanEMI(loanAmount, annualRate, years float64) domain.Result {
	return HomeLoanEMI(loanAmount, annualRate, years)
}

// TenureUnit tells FlatReducing how to read its tenure value.
type TenureUnit string

const (
	TenureYears  TenureUnit = "years"
	TenureMonths TenureUnit = "months"
)

// FlatReducing compares a flat-rate loan, where interest is charged on the
// full principal for the whole tenure, with a reducing-balance loan at the
// same nominal rate.
func FlatReducing(principal, annualRate, tenure float64, unit TenureUnit) domain.Result {
	months := tenure * 12
	years := tenure
	if unit == TenureMonths {
		months = tenure
		years = tenure / 12
	}

	flatInterest := principal * annualRate * years / 100
	flatTotal := principal + flatInterest
	flatEMI := flatTotal / months

	reducingEMI := emiAmount(principal, annualRate/12/100, months)
	reducingTotal := reducingEMI * months
	reducingInterest := reducingTotal - principal

	return domain.Result{
		"flatRateEMI":               currency(flatEMI),
		"flatRateTotalInterest":     currency(flatInterest),
		"flatRateTotalAmount":       currency(flatTotal),
		"reducingRateEMI":           currency(reducingEMI),
		"reducingRateTotalInterest": currency(reducingInterest),
		"reducingRateTotalAmount":   currency(reducingTotal),
		"savings":                   currency(flatInterest - reducingInterest),
	}
}

type LoanEligibilityInput struct {
	MonthlyIncome float64
	ExistingEMI   float64
	AnnualRate    float64
	Years         float64
	MaxEMIRatio   float64
}

// LoanEligibility solves the EMI formula for the principal, given the largest
// instalment the borrower can afford after existing obligations.
func LoanEligibility(in LoanEligibilityInput) domain.Result {
	maxEMI := math.Max(0, in.MonthlyIncome*in.MaxEMIRatio/100-in.ExistingEMI)
	i := in.AnnualRate / 12 / 100
	months := in.Years * 12

	eligible := maxEMI * months
	if i != 0 {
		factor := math.Pow(1+i, months)
		eligible = maxEMI * (factor - 1) / (i * factor)
	}

	return domain.Result{
		"eligibleLoanAmount": currency(eligible),
		"maxEmi":             currency(maxEMI),
		"totalPayment":       currency(maxEMI * months),
		"annualRate":         in.AnnualRate,
		"years":              in.Years,
	}
}
