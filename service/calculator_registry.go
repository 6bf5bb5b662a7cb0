package service

import (
	"errors"
	"fmt"

	"fincalc/domain"
	"fincalc/formula"
)

// calculator binds a type to its cross-field check and its formula. check
// runs after the static rules have passed, so compute may assume every
// required input is present and numeric.
//
// prepare stands in for both when the check already builds what the formula
// consumes: it validates once and returns the bound computation.
type calculator struct {
	check   func(in domain.Inputs) error
	compute func(in domain.Inputs) (domain.Result, error)
	prepare func(in domain.Inputs) (run func() (domain.Result, error), err error)
}

func num(in domain.Inputs, name string) float64 { return in.FloatOr(name, 0) }

func whole(in domain.Inputs, name string) int { return int(in.FloatOr(name, 0)) }

// pure adapts a formula that cannot fail.
func pure(f func(in domain.Inputs) domain.Result) func(domain.Inputs) (domain.Result, error) {
	return func(in domain.Inputs) (domain.Result, error) { return f(in), nil }
}

var calculators = map[domain.CalculatorType]calculator{
	domain.SIP: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.SIP(num(in, "monthlyInvestment"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.Lumpsum: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.Lumpsum(num(in, "principal"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.SWP: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.SWP(num(in, "initialInvestment"), num(in, "monthlyWithdrawal"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.MutualFund: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.MutualFundReturns(num(in, "principal"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.SSY: {
		check: checkSSY,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.SSY(num(in, "annualDeposit"), whole(in, "girlAge"), whole(in, "startYear"))
		}),
	},
	domain.PPF: {
		check: checkPPF,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.PPF(num(in, "annualDeposit"), ppfYears(in))
		}),
	},
	domain.EPF: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.EPF(formula.EPFInput{
			BasicSalary:              num(in, "basicSalary"),
			Age:                      whole(in, "age"),
			EmployeeContributionRate: num(in, "employeeContributionRate"),
			AnnualIncrease:           num(in, "annualIncrease"),
			InterestRate:             num(in, "interestRate"),
			RetirementAge:            formula.EPFRetirementAge,
		})
	})},
	domain.NPS: {
		check: checkNPS,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.NPS(num(in, "monthlyInvestment"), whole(in, "currentAge"), formula.NPSRetirementAge, num(in, "expectedReturn"))
		}),
	},
	domain.APY: {
		check: checkAPY,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.APY(whole(in, "currentAge"), whole(in, "pensionAmount"))
		}),
	},
	domain.Retirement: {
		check: checkRetirement,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.Retirement(formula.RetirementInput{
				CurrentAge:      whole(in, "currentAge"),
				RetirementAge:   whole(in, "retirementAge"),
				LifeExpectancy:  whole(in, "lifeExpectancy"),
				MonthlyExpenses: num(in, "monthlyExpenses"),
				InflationRate:   num(in, "inflationRate"),
				ExpectedReturn:  num(in, "expectedReturn"),
			})
		}),
	},
	domain.StepUpSIP: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.StepUpSIP(num(in, "initialMonthlyInvestment"), num(in, "annualStepUp"), num(in, "annualRate"), whole(in, "years"))
	})},
	domain.CAGR: {
		check: checkCAGR,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.CAGR(num(in, "initialValue"), num(in, "finalValue"), num(in, "years"))
		}),
	},
	domain.XIRR: {prepare: prepareXIRR},
	domain.FD: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.FD(num(in, "principal"), num(in, "annualRate"), num(in, "years"), in.FloatOr("compoundingFrequency", 4))
	})},
	domain.RD: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.RD(num(in, "monthlyDeposit"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.NSC: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.NSC(num(in, "principal"), in.FloatOr("annualRate", formula.NSCDefaultRate), in.FloatOr("years", formula.NSCDefaultYears))
	})},
	domain.PostOfficeMIS: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.PostOfficeMIS(num(in, "principal"))
	})},
	domain.SCSS: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.SCSS(num(in, "principal"), in.FloatOr("annualRate", formula.SCSSRate), in.FloatOr("years", formula.SCSSDefaultYears))
	})},
	domain.EMI: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.EMI(num(in, "principal"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.HomeLoanEMI: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.HomeLoanEMI(num(in, "loanAmount"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.CarLoanEMI: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.CarLoanEMI(num(in, "loanAmount"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.FlatReducing: {compute: pure(func(in domain.Inputs) domain.Result {
		unit := formula.TenureUnit(in.StringOr("tenureUnit", string(formula.TenureYears)))
		return formula.FlatReducing(num(in, "principal"), num(in, "flatRate"), num(in, "years"), unit)
	})},
	domain.SimpleInterest: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.SimpleInterest(num(in, "principal"), num(in, "annualRate"), num(in, "years"))
	})},
	domain.CompoundInterest: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.CompoundInterest(num(in, "principal"), num(in, "annualRate"), num(in, "years"), in.FloatOr("compoundingFrequency", 1))
	})},
	domain.HRA: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.HRAExemption(formula.HRAInput{
			BasicSalary:       num(in, "basicSalary"),
			DearnessAllowance: in.FloatOr("dearnessAllowance", 0),
			HRA:               num(in, "hra"),
			RentPaid:          num(in, "rentPaid"),
			IsMetro:           in.BoolOr("isMetro", false),
		})
	})},
	domain.Gratuity: {
		check: checkGratuity,
		compute: pure(func(in domain.Inputs) domain.Result {
			return formula.Gratuity(num(in, "lastSalary"), num(in, "yearsOfService"), whole(in, "monthsOfService"))
		}),
	},
	domain.IncomeTax: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.IncomeTax(num(in, "annualIncome"), formula.TaxRegime(in.StringOr("regime", string(formula.RegimeNew))))
	})},
	domain.TDS: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.TDS(num(in, "annualIncome"), in.FloatOr("standardDeduction", formula.DefaultStandardDeduction), in.FloatOr("otherDeductions", 0))
	})},
	domain.Salary: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.Salary(formula.SalaryInput{
			CTC:                         num(in, "ctc"),
			BonusPercent:                num(in, "bonusPercent"),
			MonthlyProfessionalTax:      num(in, "monthlyProfessionalTax"),
			MonthlyEmployerPF:           num(in, "monthlyEmployerPf"),
			MonthlyEmployeePF:           num(in, "monthlyEmployeePf"),
			MonthlyAdditionalDeduction1: num(in, "monthlyAdditionalDeduction1"),
			MonthlyAdditionalDeduction2: num(in, "monthlyAdditionalDeduction2"),
		})
	})},
	domain.GST: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.GST(num(in, "amount"), num(in, "gstRate"), in.BoolOr("isInclusive", false))
	})},
	domain.Inflation: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.Inflation(num(in, "currentAmount"), num(in, "inflationRate"), num(in, "years"))
	})},
	domain.Brokerage: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.Brokerage(formula.BrokerageInput{
			BuyPrice:  num(in, "buyPrice"),
			SellPrice: num(in, "sellPrice"),
			Quantity:  num(in, "quantity"),
			Segment:   formula.Segment(in.StringOr("segment", string(formula.EquityDelivery))),
			Exchange:  formula.Exchange(in.StringOr("exchange", string(formula.NSE))),
		})
	})},
	domain.Margin: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.Margin(num(in, "stockPrice"), num(in, "quantity"), in.FloatOr("leverage", 5))
	})},
	domain.StockAverage: {prepare: prepareStockAverage},
	domain.LoanEligibility: {compute: pure(func(in domain.Inputs) domain.Result {
		return formula.LoanEligibility(formula.LoanEligibilityInput{
			MonthlyIncome: num(in, "monthlyIncome"),
			ExistingEMI:   in.FloatOr("existingEmi", 0),
			AnnualRate:    num(in, "annualRate"),
			Years:         num(in, "years"),
			MaxEMIRatio:   in.FloatOr("maxEmiRatio", 50),
		})
	})},
}

func checkSSY(in domain.Inputs) error {
	if whole(in, "girlAge") > 10 {
		return domain.NewValidationError("girlAge", "SSY account can only be opened for girls up to 10 years of age")
	}
	return nil
}

func ppfYears(in domain.Inputs) int {
	return int(in.FloatOr("years", formula.PPFLockInYears))
}

func checkPPF(in domain.Inputs) error {
	years := ppfYears(in)
	if years < formula.PPFLockInYears {
		return domain.NewValidationError("years", "PPF has a minimum lock-in period of 15 years")
	}
	if years > formula.PPFLockInYears && (years-formula.PPFLockInYears)%formula.PPFExtensionBlock != 0 {
		return domain.NewValidationError("years", "PPF can be extended only in blocks of 5 years after 15 years")
	}
	return nil
}

func checkNPS(in domain.Inputs) error {
	if whole(in, "currentAge") >= formula.NPSRetirementAge {
		return domain.NewValidationError("currentAge", "Current age must be below 60 years")
	}
	return nil
}

func checkAPY(in domain.Inputs) error {
	if whole(in, "currentAge") >= 40 {
		return domain.NewValidationError("currentAge", "APY enrollment age must be below 40 years")
	}
	return nil
}

func checkRetirement(in domain.Inputs) error {
	current, retirement, life := whole(in, "currentAge"), whole(in, "retirementAge"), whole(in, "lifeExpectancy")
	if retirement <= current {
		return domain.NewValidationError("retirementAge", "Retirement age must be greater than current age")
	}
	if life <= retirement {
		return domain.NewValidationError("lifeExpectancy", "Life expectancy must be greater than retirement age")
	}
	return nil
}

func checkCAGR(in domain.Inputs) error {
	if num(in, "finalValue") <= num(in, "initialValue") {
		return domain.NewValidationError("finalValue", "Final value must be greater than initial value")
	}
	return nil
}

func checkGratuity(in domain.Inputs) error {
	if num(in, "yearsOfService") < 5 {
		return domain.NewValidationError("yearsOfService", "Minimum 5 years of service required for gratuity")
	}
	return nil
}

const maxStockLots = 3

// stockLots collects the quantity/price pairs numbered 1 to 3. A lot must
// have both values or neither.
func stockLots(in domain.Inputs) ([]formula.StockLot, error) {
	var lots []formula.StockLot
	for n := 1; n <= maxStockLots; n++ {
		qField, pField := fmt.Sprintf("quantity%d", n), fmt.Sprintf("price%d", n)
		hasQ, hasP := in.Has(qField), in.Has(pField)

		if hasQ != hasP {
			field := qField
			if hasQ {
				field = pField
			}
			return nil, domain.NewValidationError(field, fmt.Sprintf("Both quantity and price are required for lot %d", n))
		}
		if !hasQ {
			continue
		}

		q, p := num(in, qField), num(in, pField)
		if q <= 0 || p <= 0 {
			return nil, domain.NewValidationError(qField, fmt.Sprintf("Quantity and price must be greater than zero for lot %d", n))
		}
		lots = append(lots, formula.StockLot{Quantity: q, Price: p})
	}

	if len(lots) == 0 {
		return nil, domain.NewValidationError("quantity1", "At least one purchase lot is required")
	}
	return lots, nil
}

func prepareStockAverage(in domain.Inputs) (func() (domain.Result, error), error) {
	lots, err := stockLots(in)
	if err != nil {
		return nil, err
	}
	return func() (domain.Result, error) { return formula.StockAverage(lots), nil }, nil
}

// xirrSchedule parses the XIRR inputs and lays out the cashflows.
func xirrSchedule(in domain.Inputs) ([]formula.Cashflow, error) {
	start, err := formula.ParseDate(in.StringOr("startDate", ""))
	if err != nil {
		return nil, domain.NewValidationError("startDate", "Start date must be a valid date")
	}
	maturity, err := formula.ParseDate(in.StringOr("maturityDate", ""))
	if err != nil {
		return nil, domain.NewValidationError("maturityDate", "Maturity date must be a valid date")
	}

	flows, err := formula.BuildSchedule(
		start,
		formula.Frequency(in.StringOr("frequency", "")),
		num(in, "recurringAmount"),
		maturity,
		num(in, "maturityAmount"),
	)
	switch {
	case errors.Is(err, formula.ErrMaturityOrder):
		return nil, domain.NewValidationError("maturityDate", "Maturity date must be after start date")
	case errors.Is(err, formula.ErrUnknownFrequency):
		return nil, domain.NewValidationError("frequency", "Invalid investment frequency")
	case errors.Is(err, formula.ErrScheduleTooLong):
		return nil, domain.NewValidationError("frequency", "Investment schedule is too long for calculation")
	case err != nil:
		return nil, err
	}
	return flows, nil
}

func prepareXIRR(in domain.Inputs) (func() (domain.Result, error), error) {
	flows, err := xirrSchedule(in)
	if err != nil {
		return nil, err
	}

	return func() (domain.Result, error) {
		r, ok := formula.XIRR(flows)
		if !ok {
			return nil, &domain.DivergenceError{
				Message: "Unable to converge on XIRR for the provided inputs",
				Partial: r,
			}
		}
		return r, nil
	}, nil
}
