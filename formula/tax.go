package formula

import (
	"math"

	"fincalc/domain"
)

// TaxRegime selects an income tax slab ladder.
type TaxRegime string

const (
	RegimeNew TaxRegime = "new"
	RegimeOld TaxRegime = "old"
)

const (
	cessRate                 = 0.04
	DefaultStandardDeduction = 50000.0
	GratuityCeiling          = 1000000.0
)

// slab taxes income above From at Rate. The ladder is ordered by From.
type slab struct {
	From float64
	Rate float64
}

var taxSlabs = map[TaxRegime][]slab{
	RegimeNew: {
		{From: 0, Rate: 0},
		{From: 300000, Rate: 0.05},
		{From: 700000, Rate: 0.10},
		{From: 1000000, Rate: 0.15},
		{From: 1200000, Rate: 0.20},
		{From: 1500000, Rate: 0.30},
	},
	RegimeOld: {
		{From: 0, Rate: 0},
		{From: 250000, Rate: 0.05},
		{From: 500000, Rate: 0.20},
		{From: 1000000, Rate: 0.30},
	},
}

// slabTax applies the marginal rates of the ladder to income.
func slabTax(income float64, ladder []slab) float64 {
	tax := 0.0
	for n, s := range ladder {
		if income <= s.From {
			break
		}
		upper := income
		if n+1 < len(ladder) && ladder[n+1].From < income {
			upper = ladder[n+1].From
		}
		tax += (upper - s.From) * s.Rate
	}
	return tax
}

// IncomeTax applies the regime's slabs and a 4% cess. Any regime other than
// "new" is taxed under the old ladder.
func IncomeTax(annualIncome float64, regime TaxRegime) domain.Result {
	ladder, ok := taxSlabs[regime]
	if !ok {
		ladder = taxSlabs[RegimeOld]
	}

	tax := slabTax(annualIncome, ladder)
	cess := tax * cessRate
	totalTax := tax + cess

	effectiveRate := 0.0
	if annualIncome > 0 {
		effectiveRate = totalTax / annualIncome * 100
	}

	return domain.Result{
		"annualIncome":  currency(annualIncome),
		"totalTax":      currency(totalTax),
		"cess":          currency(cess),
		"netIncome":     currency(annualIncome - totalTax),
		"monthlyTax":    currency(totalTax / 12),
		"effectiveRate": percent(effectiveRate),
	}
}

// TDS estimates salary tax deducted at source under the new regime.
func TDS(annualIncome, standardDeduction, otherDeductions float64) domain.Result {
	taxable := annualIncome - standardDeduction - otherDeductions
	tax := IncomeTax(taxable, RegimeNew)

	return domain.Result{
		"annualIncome":      currency(annualIncome),
		"standardDeduction": currency(standardDeduction),
		"otherDeductions":   currency(otherDeductions),
		"taxableIncome":     currency(taxable),
		"monthlyTDS":        tax["monthlyTax"],
		"annualTDS":         tax["totalTax"],
	}
}

type HRAInput struct {
	BasicSalary       float64
	DearnessAllowance float64
	HRA               float64
	RentPaid          float64
	IsMetro           bool
}

// HRAExemption is the least of the HRA received, 50% (metro) or 40% of
// basic+DA, and rent paid in excess of 10% of basic+DA.
func HRAExemption(in HRAInput) domain.Result {
	salary := in.BasicSalary + in.DearnessAllowance
	share := 0.4
	if in.IsMetro {
		share = 0.5
	}
	excessRent := math.Max(0, in.RentPaid-salary*0.1)
	exemption := math.Min(in.HRA, math.Min(salary*share, excessRent))

	return domain.Result{
		"exemption":         currency(exemption),
		"taxableHRA":        currency(math.Max(0, in.HRA-exemption)),
		"rentPaid":          currency(in.RentPaid),
		"basicSalary":       currency(in.BasicSalary),
		"dearnessAllowance": currency(in.DearnessAllowance),
	}
}

// Gratuity pays 15 days of the last salary for every year of service, a part
// year of six months or more counting as a full year, up to the statutory
// ceiling.
func Gratuity(lastSalary, yearsOfService float64, monthsOfService int) domain.Result {
	years := yearsOfService
	if monthsOfService >= 6 {
		years++
	}
	gratuity := math.Min(lastSalary*15*years/26, GratuityCeiling)

	return domain.Result{
		"gratuity":       currency(gratuity),
		"yearsOfService": years,
		"lastSalary":     currency(lastSalary),
		"maxGratuity":    GratuityCeiling,
	}
}

type SalaryInput struct {
	CTC                         float64
	BonusPercent                float64
	MonthlyProfessionalTax      float64
	MonthlyEmployerPF           float64
	MonthlyEmployeePF           float64
	MonthlyAdditionalDeduction1 float64
	MonthlyAdditionalDeduction2 float64
}

// Salary derives take-home pay from the cost to company.
func Salary(in SalaryInput) domain.Result {
	bonus := in.CTC * in.BonusPercent / 100
	monthly := in.MonthlyProfessionalTax + in.MonthlyEmployerPF + in.MonthlyEmployeePF +
		in.MonthlyAdditionalDeduction1 + in.MonthlyAdditionalDeduction2

	annualDeductions := monthly*12 + bonus
	takeHomeAnnual := in.CTC - annualDeductions

	return domain.Result{
		"ctc":                    currency(in.CTC),
		"totalMonthlyDeductions": currency(monthly + bonus/12),
		"totalAnnualDeductions":  currency(annualDeductions),
		"takeHomeMonthly":        currency(takeHomeAnnual / 12),
		"takeHomeAnnual":         currency(takeHomeAnnual),
	}
}

// GST splits an amount into base and tax. With inclusive set the amount
// already contains GST.
func GST(amount, gstRate float64, inclusive bool) domain.Result {
	base := amount
	gstAmount := amount * gstRate / 100
	total := amount + gstAmount
	if inclusive {
		total = amount
		base = amount / (1 + gstRate/100)
		gstAmount = amount - base
	}

	return domain.Result{
		"baseAmount":  currency(base),
		"gstAmount":   currency(gstAmount),
		"cgst":        currency(gstAmount / 2),
		"sgst":        currency(gstAmount / 2),
		"totalAmount": currency(total),
		"gstRate":     gstRate,
	}
}
