// Package validation holds the static input rules of every calculator and
// checks request inputs against them.
package validation

import (
	"strconv"

	"fincalc/domain"
)

const isoDatePattern = `^\d{4}-\d{2}-\d{2}`

func bound(v float64) *float64 { return &v }

func floatRange(field string, min, max float64, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleFloat, Min: bound(min), Max: bound(max), Message: message}
}

func floatMin(field string, min float64, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleFloat, Min: bound(min), Message: message}
}

func intRange(field string, min, max float64, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleInt, Min: bound(min), Max: bound(max), Message: message}
}

func intMin(field string, min float64, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleInt, Min: bound(min), Message: message}
}

func oneOf(field string, values []string, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleEnum, Enum: values, Message: message}
}

func oneOfNumbers(field string, values []float64, message string) domain.ValidationRule {
	enum := make([]string, len(values))
	for n, v := range values {
		enum[n] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return oneOf(field, enum, message)
}

func boolean(field, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleBoolean, Message: message}
}

func isoDate(field, message string) domain.ValidationRule {
	return domain.ValidationRule{Field: field, Type: domain.RuleDate, Pattern: isoDatePattern, Message: message}
}

func optional(r domain.ValidationRule) domain.ValidationRule {
	r.Optional = true
	return r
}

var compoundingFrequencies = []float64{1, 2, 4, 12}

// Shared messages.
const (
	msgAnnualReturn   = "Annual return rate must be between 0.1% and 50%"
	msgPeriod1to50    = "Investment period must be between 1 and 50 years"
	msgCompounding    = "Compounding frequency must be 1, 2, 4, or 12"
	msgTenure5        = "Tenure must be 5 years"
	msgLoan10kTo10Cr  = "Loan amount must be between ₹10,000 and ₹10,00,00,000"
	msgPrincipal100   = "Principal amount must be between ₹100 and ₹10,00,00,000"
	msgSimpleRate     = "Interest rate must be between 0.1% and 36%"
	msgTimePeriod     = "Time period must be between 0.1 and 50 years"
	msgSalary1kTo1Cr  = "Basic salary must be between ₹1,000 and ₹1,00,00,000"
	msgIncome0To10Cr  = "Annual income must be between ₹0 and ₹10,00,00,000"
	msgQuantity       = "Quantity must be between 1 and 10,00,000"
	msgExtraDeduction = "Monthly additional deduction must be between ₹0 and ₹1,00,000"
)

var rules = map[domain.CalculatorType][]domain.ValidationRule{
	domain.SIP: {
		floatMin("monthlyInvestment", 500, "Monthly investment must be at least ₹500"),
		floatRange("annualRate", 0.1, 50, msgAnnualReturn),
		intMin("years", 3, "Investment period must be at least 3 years"),
	},
	domain.Lumpsum: {
		floatRange("principal", 500, 100000000, "Principal amount must be between ₹500 and ₹10,00,00,000"),
		floatRange("annualRate", 0.1, 50, msgAnnualReturn),
		intRange("years", 1, 50, msgPeriod1to50),
	},
	domain.SWP: {
		floatRange("initialInvestment", 10000, 100000000, "Initial investment must be between ₹10,000 and ₹10,00,00,000"),
		floatRange("monthlyWithdrawal", 100, 10000000, "Monthly withdrawal must be between ₹100 and ₹1,00,00,000"),
		floatRange("annualRate", 0.1, 50, msgAnnualReturn),
		intRange("years", 1, 50, "Withdrawal period must be between 1 and 50 years"),
	},
	domain.MutualFund: {
		floatRange("principal", 500, 100000000, "Investment amount must be between ₹500 and ₹10,00,00,000"),
		floatRange("annualRate", 0.1, 50, msgAnnualReturn),
		intRange("years", 1, 50, msgPeriod1to50),
	},
	domain.SSY: {
		floatRange("annualDeposit", 250, 150000, "Annual deposit must be between ₹250 and ₹1,50,000"),
		intRange("girlAge", 0, 10, "Girl child age must be between 0 and 10 years"),
		intRange("startYear", 2000, 2100, "Start period must be between 2000 and 2100"),
	},
	domain.PPF: {
		floatRange("annualDeposit", 500, 150000, "Annual deposit must be between ₹500 and ₹1,50,000"),
		optional(intRange("years", 15, 50, "Investment period must be between 15 and 50 years (in multiples of 5 after 15)")),
	},
	domain.EPF: {
		floatRange("basicSalary", 1000, 10000000, msgSalary1kTo1Cr),
		intRange("age", 18, 58, "Age must be between 18 and 58 years"),
		floatRange("employeeContributionRate", 0, 20, "Employee contribution rate must be between 0% and 20%"),
		floatRange("annualIncrease", 0, 20, "Annual increase must be between 0% and 20%"),
		floatRange("interestRate", 0, 20, "Interest rate must be between 0% and 20%"),
	},
	domain.NPS: {
		floatRange("monthlyInvestment", 500, 10000000, "Monthly investment must be between ₹500 and ₹1,00,00,000"),
		intRange("currentAge", 18, 60, "Current age must be between 18 and 60 years"),
		floatRange("expectedReturn", 1, 15, "Expected return must be between 1% and 15%"),
	},
	domain.APY: {
		intRange("currentAge", 18, 40, "Age must be between 18 and 40 years"),
		oneOfNumbers("pensionAmount", []float64{1000, 2000, 3000, 4000, 5000}, "Pension amount must be 1000, 2000, 3000, 4000, or 5000"),
	},
	domain.Retirement: {
		intRange("currentAge", 18, 65, "Current age must be between 18 and 65 years"),
		intRange("retirementAge", 50, 75, "Retirement age must be between 50 and 75 years"),
		intRange("lifeExpectancy", 65, 100, "Life expectancy must be between 65 and 100 years"),
		floatRange("monthlyExpenses", 1000, 10000000, "Monthly expenses must be between ₹1,000 and ₹1,00,00,000"),
		floatRange("inflationRate", 0, 20, "Inflation rate must be between 0% and 20%"),
		floatRange("expectedReturn", 1, 30, "Expected return must be between 1% and 30%"),
	},
	domain.StepUpSIP: {
		floatRange("initialMonthlyInvestment", 100, 10000000, "Initial monthly investment must be between ₹100 and ₹1,00,00,000"),
		floatRange("annualStepUp", 1, 50, "Annual step-up must be between 1% and 50%"),
		floatRange("annualRate", 0.1, 50, msgAnnualReturn),
		intRange("years", 1, 50, msgPeriod1to50),
	},
	domain.CAGR: {
		floatRange("initialValue", 100, 1000000000, "Initial value must be between ₹100 and ₹100,00,00,000"),
		floatRange("finalValue", 100, 10000000000, "Final value must be between ₹100 and ₹1,000,00,00,000"),
		floatRange("years", 0.1, 100, "Investment period must be between 0.1 and 100 years"),
	},
	domain.XIRR: {
		isoDate("startDate", "Start date must be a valid date"),
		oneOf("frequency", []string{"14-days", "monthly", "quarterly", "half-yearly", "yearly"},
			"Frequency must be 14 Days, Monthly, Quarterly, Half Yearly, or Yearly"),
		floatRange("recurringAmount", 1, 1000000000, "Recurring amount must be between ₹1 and ₹1,000,00,00,000"),
		isoDate("maturityDate", "Maturity date must be a valid date"),
		floatRange("maturityAmount", 1, 1000000000, "Maturity amount must be between ₹1 and ₹1,000,00,00,000"),
	},
	domain.FD: {
		floatRange("principal", 1000, 100000000, "Principal amount must be between ₹1,000 and ₹10,00,00,000"),
		floatRange("annualRate", 1, 15, "Interest rate must be between 1% and 15%"),
		floatRange("years", 0.25, 10, "Tenure must be between 3 months and 10 years"),
		optional(oneOfNumbers("compoundingFrequency", compoundingFrequencies, msgCompounding)),
	},
	domain.RD: {
		floatRange("monthlyDeposit", 500, 1000000, "Monthly deposit must be between ₹500 and ₹10,00,000"),
		floatRange("annualRate", 1, 15, "Interest rate must be between 1% and 15%"),
		floatRange("years", 0.5, 10, "Tenure must be between 6 months and 10 years"),
	},
	domain.NSC: {
		floatRange("principal", 1000, 10000000, "Investment amount must be between ₹1,000 and ₹1,00,00,000"),
		optional(floatRange("annualRate", 0.1, 15, "Interest rate must be between 0.1% and 15%")),
		optional(intRange("years", 5, 5, msgTenure5)),
	},
	domain.PostOfficeMIS: {
		floatRange("principal", 1000, 900000, "Deposit amount must be between ₹1,000 and ₹9,00,000"),
	},
	domain.SCSS: {
		floatRange("principal", 1000, 1500000, "Deposit amount must be between ₹1,000 and ₹15,00,000"),
		optional(floatRange("annualRate", 8.2, 8.2, "Interest rate must be 8.2%")),
		optional(intRange("years", 5, 5, msgTenure5)),
	},
	domain.EMI: {
		floatRange("principal", 10000, 100000000, msgLoan10kTo10Cr),
		floatRange("annualRate", 1, 36, "Interest rate must be between 1% and 36%"),
		floatRange("years", 0.5, 30, "Loan tenure must be between 6 months and 30 years"),
	},
	domain.HomeLoanEMI: {
		floatRange("loanAmount", 100000, 100000000, "Loan amount must be between ₹1,00,000 and ₹10,00,00,000"),
		floatRange("annualRate", 6, 15, "Interest rate must be between 6% and 15%"),
		intRange("years", 5, 30, "Loan tenure must be between 5 and 30 years"),
	},
	domain.CarLoanEMI: {
		floatRange("loanAmount", 50000, 10000000, "Loan amount must be between ₹50,000 and ₹1,00,00,000"),
		floatRange("annualRate", 1, 18, "Interest rate must be between 1% and 18%"),
		intRange("years", 1, 7, "Loan tenure must be between 1 and 7 years"),
	},
	domain.FlatReducing: {
		floatRange("principal", 10000, 100000000, msgLoan10kTo10Cr),
		floatRange("flatRate", 1, 30, "Flat interest rate must be between 1% and 30%"),
		intRange("years", 1, 360, "Loan tenure must be between 1 and 360"),
		optional(oneOf("tenureUnit", []string{"years", "months"}, `Tenure unit must be "years" or "months"`)),
	},
	domain.SimpleInterest: {
		floatRange("principal", 100, 100000000, msgPrincipal100),
		floatRange("annualRate", 0.1, 36, msgSimpleRate),
		floatRange("years", 0.1, 50, msgTimePeriod),
	},
	domain.CompoundInterest: {
		floatRange("principal", 100, 100000000, msgPrincipal100),
		floatRange("annualRate", 0.1, 36, msgSimpleRate),
		floatRange("years", 0.1, 50, msgTimePeriod),
		optional(oneOfNumbers("compoundingFrequency", compoundingFrequencies, msgCompounding)),
	},
	domain.HRA: {
		floatRange("basicSalary", 1000, 10000000, msgSalary1kTo1Cr),
		optional(floatRange("dearnessAllowance", 0, 10000000, "Dearness allowance must be between ₹0 and ₹1,00,00,000")),
		floatRange("hra", 0, 10000000, "HRA received must be between ₹0 and ₹1,00,00,000"),
		floatRange("rentPaid", 0, 10000000, "Rent paid must be between ₹0 and ₹1,00,00,000"),
		boolean("isMetro", "Metro city status must be true or false"),
	},
	domain.Gratuity: {
		floatRange("lastSalary", 1000, 10000000, "Last drawn salary must be between ₹1,000 and ₹1,00,00,000"),
		floatRange("yearsOfService", 5, 50, "Years of service must be between 5 and 50 years"),
		optional(intRange("monthsOfService", 0, 11, "Months of service must be between 0 and 11")),
	},
	domain.IncomeTax: {
		floatRange("annualIncome", 0, 100000000, msgIncome0To10Cr),
		optional(oneOf("regime", []string{"new", "old"}, `Tax regime must be "new" or "old"`)),
	},
	domain.TDS: {
		floatRange("annualIncome", 0, 100000000, msgIncome0To10Cr),
		optional(floatRange("standardDeduction", 0, 100000, "Standard deduction must be between ₹0 and ₹1,00,000")),
		optional(floatRange("otherDeductions", 0, 10000000, "Other deductions must be between ₹0 and ₹1,00,00,000")),
	},
	domain.Salary: {
		floatRange("ctc", 100000, 100000000, "CTC must be between ₹1,00,000 and ₹10,00,00,000"),
		optional(floatRange("bonusPercent", 0, 100, "Bonus percentage must be between 0% and 100%")),
		optional(floatRange("monthlyProfessionalTax", 0, 5000, "Monthly professional tax must be between ₹0 and ₹5,000")),
		optional(floatRange("monthlyEmployerPf", 0, 50000, "Monthly employer PF must be between ₹0 and ₹50,000")),
		optional(floatRange("monthlyEmployeePf", 0, 50000, "Monthly employee PF must be between ₹0 and ₹50,000")),
		optional(floatRange("monthlyAdditionalDeduction1", 0, 100000, msgExtraDeduction)),
		optional(floatRange("monthlyAdditionalDeduction2", 0, 100000, msgExtraDeduction)),
	},
	domain.GST: {
		floatRange("amount", 1, 100000000, "Amount must be between ₹1 and ₹10,00,00,000"),
		oneOfNumbers("gstRate", []float64{0, 5, 12, 18, 28}, "GST rate must be 0%, 5%, 12%, 18%, or 28%"),
		optional(boolean("isInclusive", "GST inclusive flag must be true or false")),
	},
	domain.Inflation: {
		floatRange("currentAmount", 100, 100000000, "Current amount must be between ₹100 and ₹10,00,00,000"),
		floatRange("inflationRate", 0, 20, "Inflation rate must be between 0% and 20%"),
		intRange("years", 1, 50, "Time period must be between 1 and 50 years"),
	},
	domain.Brokerage: {
		optional(oneOf("segment", []string{"equity-delivery", "equity-intraday", "fno"}, "Segment must be equity-delivery, equity-intraday, or fno")),
		optional(oneOf("exchange", []string{"NSE", "BSE"}, "Exchange must be NSE or BSE")),
		floatRange("buyPrice", 0.01, 1000000, "Buy price must be between ₹0.01 and ₹10,00,000"),
		floatRange("sellPrice", 0.01, 1000000, "Sell price must be between ₹0.01 and ₹10,00,000"),
		intRange("quantity", 1, 1000000, msgQuantity),
	},
	domain.Margin: {
		floatRange("stockPrice", 0.01, 1000000, "Stock price must be between ₹0.01 and ₹10,00,000"),
		intRange("quantity", 1, 1000000, msgQuantity),
		optional(floatRange("leverage", 1, 20, "Leverage must be between 1x and 20x")),
	},
	domain.StockAverage: {
		intRange("quantity1", 1, 1000000, "Quantity (Lot 1) must be between 1 and 10,00,000"),
		floatRange("price1", 0.01, 1000000, "Price (Lot 1) must be between ₹0.01 and ₹10,00,000"),
		optional(intRange("quantity2", 1, 1000000, "Quantity (Lot 2) must be between 1 and 10,00,000")),
		optional(floatRange("price2", 0.01, 1000000, "Price (Lot 2) must be between ₹0.01 and ₹10,00,000")),
		optional(intRange("quantity3", 1, 1000000, "Quantity (Lot 3) must be between 1 and 10,00,000")),
		optional(floatRange("price3", 0.01, 1000000, "Price (Lot 3) must be between ₹0.01 and ₹10,00,000")),
	},
	domain.LoanEligibility: {
		floatRange("monthlyIncome", 1000, 10000000, "Monthly income must be between ₹1,000 and ₹1,00,00,000"),
		optional(floatRange("existingEmi", 0, 10000000, "Existing EMI must be between ₹0 and ₹1,00,00,000")),
		floatRange("annualRate", 1, 30, "Interest rate must be between 1% and 30%"),
		intRange("years", 1, 30, "Loan tenure must be between 1 and 30 years"),
		optional(floatRange("maxEmiRatio", 30, 70, "Max EMI ratio must be between 30% and 70%")),
	},
}

// Rules returns a copy of the rules declared for t. ok is false for an
// unknown calculator type.
func Rules(t domain.CalculatorType) (out []domain.ValidationRule, ok bool) {
	declared, ok := rules[t]
	if !ok {
		return nil, false
	}
	out = make([]domain.ValidationRule, len(declared))
	for n, r := range declared {
		if r.Enum != nil {
			r.Enum = append([]string(nil), r.Enum...)
		}
		if r.Min != nil {
			r.Min = bound(*r.Min)
		}
		if r.Max != nil {
			r.Max = bound(*r.Max)
		}
		out[n] = r
	}
	return out, true
}
