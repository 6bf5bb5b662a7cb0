package domain

import (
	"maps"
	"slices"
	"time"
)

// CalculatorType identifies one calculator. The string values are part of the
// public API and must not be renamed.
type CalculatorType string

const (
	SIP              CalculatorType = "sip"
	Lumpsum          CalculatorType = "lumpsum"
	SWP              CalculatorType = "swp"
	MutualFund       CalculatorType = "mf"
	SSY              CalculatorType = "ssy"
	PPF              CalculatorType = "ppf"
	EPF              CalculatorType = "epf"
	NPS              CalculatorType = "nps"
	APY              CalculatorType = "apy"
	Retirement       CalculatorType = "retirement"
	StepUpSIP        CalculatorType = "step-up-sip"
	CAGR             CalculatorType = "cagr"
	XIRR             CalculatorType = "xirr"
	FD               CalculatorType = "fd"
	RD               CalculatorType = "rd"
	NSC              CalculatorType = "nsc"
	PostOfficeMIS    CalculatorType = "postoffice-mis"
	SCSS             CalculatorType = "scss"
	EMI              CalculatorType = "emi"
	HomeLoanEMI      CalculatorType = "home-loan-emi"
	CarLoanEMI       CalculatorType = "car-loan-emi"
	FlatReducing     CalculatorType = "flat-reducing"
	SimpleInterest   CalculatorType = "simple-interest"
	CompoundInterest CalculatorType = "compound-interest"
	HRA              CalculatorType = "hra"
	Gratuity         CalculatorType = "gratuity"
	IncomeTax        CalculatorType = "income-tax"
	TDS              CalculatorType = "tds"
	Salary           CalculatorType = "salary"
	GST              CalculatorType = "gst"
	Inflation        CalculatorType = "inflation"
	Brokerage        CalculatorType = "brokerage"
	Margin           CalculatorType = "margin"
	StockAverage     CalculatorType = "stock-average"
	LoanEligibility  CalculatorType = "loan-eligibility"
)

// CalculatorTypes lists every supported calculator in catalog order.
var CalculatorTypes = []CalculatorType{
	SIP, Lumpsum, SWP, MutualFund, SSY, PPF,
	EPF, NPS, APY, Retirement, StepUpSIP, CAGR,
	FD, RD, NSC, PostOfficeMIS, SCSS,
	EMI, HomeLoanEMI, CarLoanEMI, FlatReducing,
	SimpleInterest, CompoundInterest,
	HRA, Gratuity, IncomeTax, TDS, Salary,
	GST, Inflation, Brokerage, Margin,
	StockAverage, XIRR, LoanEligibility,
}

// Result holds the named numeric outputs of one calculation, already rounded
// to their presentation precision.
type Result map[string]float64

// Keys returns the result names in sorted order.
func (r Result) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// FormatKind is the presentation format declared for a result field.
type FormatKind string

const (
	FormatCurrency   FormatKind = "currency"
	FormatCurrency2  FormatKind = "currency2"
	FormatPercentage FormatKind = "percentage"
	FormatText       FormatKind = "text"
)

// CalculationOutcome is what the dispatcher hands back to its caller.
// PersistenceError is set when the result was computed but could not be stored.
type CalculationOutcome struct {
	Inputs           Inputs `json:"inputs"`
	Result           Result `json:"result"`
	CalculationID    string `json:"calculationId,omitempty"`
	PersistenceError string `json:"persistenceError,omitempty"`
}

// CalculationRecord is the stored form of a successful calculation.
type CalculationRecord struct {
	ID             string         `json:"id"`
	CalculatorType CalculatorType `json:"calculatorType"`
	Inputs         Inputs         `json:"inputs"`
	Result         Result         `json:"result"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TypeStats aggregates usage of a single calculator type.
type TypeStats struct {
	Type       CalculatorType `json:"type"`
	Count      int64          `json:"count"`
	LastUsedAt time.Time      `json:"lastUsedAt"`
}
