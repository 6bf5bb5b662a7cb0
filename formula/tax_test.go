package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestIncomeTaxSlabs(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		regime   TaxRegime
		totalTax float64
		cess     float64
	}{
		{"new regime exempt limit", 300000, RegimeNew, 0, 0},
		{"new regime just past 7L", 700001, RegimeNew, 20800, 800},
		{"old regime top slab", 1500000, RegimeOld, 273000, 10500},
		{"unknown regime uses old ladder", 1500000, TaxRegime("legacy"), 273000, 10500},
		{"zero income", 0, RegimeNew, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := IncomeTax(tt.income, tt.regime)
			assert.Equal(t, tt.totalTax, r["totalTax"])
			assert.Equal(t, tt.cess, r["cess"])
			assert.Equal(t, tt.income-tt.totalTax, r["netIncome"])
		})
	}
}

func TestIncomeTaxEffectiveRate(t *testing.T) {
	assert.Equal(t, 2.97, IncomeTax(700001, RegimeNew)["effectiveRate"])
	assert.Equal(t, 18.2, IncomeTax(1500000, RegimeOld)["effectiveRate"])
	assert.Equal(t, 0.0, IncomeTax(0, RegimeOld)["effectiveRate"])
}

func TestTDS(t *testing.T) {
	assert.Equal(t, domain.Result{
		"annualIncome":      1000000,
		"standardDeduction": 50000,
		"otherDeductions":   0,
		"taxableIncome":     950000,
		"monthlyTDS":        3900,
		"annualTDS":         46800,
	}, TDS(1000000, DefaultStandardDeduction, 0))
}

func TestHRAExemption(t *testing.T) {
	tests := []struct {
		name      string
		in        HRAInput
		exemption float64
		taxable   float64
	}{
		{"actual hra is least", HRAInput{BasicSalary: 50000, HRA: 20000, RentPaid: 25000, IsMetro: true}, 20000, 0},
		{"excess rent is least", HRAInput{BasicSalary: 50000, HRA: 20000, RentPaid: 15000}, 10000, 10000},
		{"salary share is least", HRAInput{BasicSalary: 20000, DearnessAllowance: 5000, HRA: 15000, RentPaid: 30000}, 10000, 5000},
		{"rent below ten percent", HRAInput{BasicSalary: 50000, HRA: 20000, RentPaid: 4000}, 0, 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := HRAExemption(tt.in)
			assert.Equal(t, tt.exemption, r["exemption"])
			assert.Equal(t, tt.taxable, r["taxableHRA"])
		})
	}
}

func TestGratuity(t *testing.T) {
	r := Gratuity(50000, 10, 0)
	assert.Equal(t, 288462.0, r["gratuity"])
	assert.Equal(t, 10.0, r["yearsOfService"])

	r = Gratuity(50000, 10, 6)
	assert.Equal(t, 11.0, r["yearsOfService"])

	r = Gratuity(100000, 30, 6)
	assert.Equal(t, GratuityCeiling, r["gratuity"])
	assert.Equal(t, 31.0, r["yearsOfService"])
}

func TestSalary(t *testing.T) {
	r := Salary(SalaryInput{
		CTC:                    1200000,
		BonusPercent:           10,
		MonthlyProfessionalTax: 200,
		MonthlyEmployeePF:      1800,
	})

	assert.Equal(t, 144000.0, r["totalAnnualDeductions"])
	assert.Equal(t, 12000.0, r["totalMonthlyDeductions"])
	assert.Equal(t, 1056000.0, r["takeHomeAnnual"])
	assert.Equal(t, 88000.0, r["takeHomeMonthly"])
}

func TestGST(t *testing.T) {
	want := domain.Result{
		"baseAmount":  1000,
		"gstAmount":   180,
		"cgst":        90,
		"sgst":        90,
		"totalAmount": 1180,
		"gstRate":     18,
	}

	assert.Equal(t, want, GST(1000, 18, false))
	assert.Equal(t, want, GST(1180, 18, true))
}
