package formula

import (
	"math"

	"fincalc/domain"
)

// Government scheme constants.
const (
	SSYRate           = 8.2
	SSYDepositYears   = 15
	SSYMaturityYears  = 21
	PPFRate           = 7.1
	PPFLockInYears    = 15
	PPFExtensionBlock = 5
	EPFEmployerRate   = 12.0
	EPFRetirementAge  = 58
	NPSRetirementAge  = 60
	NPSMinAnnuityPart = 0.4
	APYPensionAge     = 60
	MISRate           = 7.4
	SCSSRate          = 8.2
	NSCDefaultRate    = 6.0
	NSCDefaultYears   = 5.0
	SCSSDefaultYears  = 5.0
)

// SSY simulates a Sukanya Samriddhi account: interest accrues monthly but is
// credited (rounded) only at each 12-month boundary. Deposits stop after 15
// years; the account matures 21 years after opening.
func SSY(annualDeposit float64, girlAge, startYear int) domain.Result {
	i := monthlyEquivalentRate(SSYRate)
	depositMonths := SSYDepositYears * 12
	maturityMonths := SSYMaturityYears * 12
	monthlyDeposit := annualDeposit / 12

	balance := 0.0
	accrued := 0.0
	for month := 0; month < maturityMonths; month++ {
		if month < depositMonths {
			balance += monthlyDeposit
		}
		accrued += balance * i
		if (month+1)%12 == 0 {
			balance += math.Round(accrued)
			accrued = 0
		}
	}

	r := growthResult(annualDeposit*SSYDepositYears, balance)
	r["maturityYear"] = float64(startYear + SSYMaturityYears)
	r["interestRate"] = SSYRate
	r["girlAge"] = float64(girlAge)
	return r
}

// PPF compounds each annual deposit for the years it stays invested.
func PPF(annualDeposit float64, years int) domain.Result {
	rate := PPFRate / 100

	maturityAmount := 0.0
	for y := 0; y < years; y++ {
		maturityAmount += annualDeposit * math.Pow(1+rate, float64(years-y))
	}

	r := growthResult(annualDeposit*float64(years), maturityAmount)
	r["interestRate"] = PPFRate
	r["tenure"] = float64(years)
	return r
}

type EPFInput struct {
	BasicSalary              float64
	Age                      int
	EmployeeContributionRate float64
	AnnualIncrease           float64
	InterestRate             float64
	RetirementAge            int
}

// EPF simulates monthly employee and employer contributions with monthly
// compounding and a yearly salary increase.
func EPF(in EPFInput) domain.Result {
	monthlyRate := in.InterestRate / 100 / 12
	months := (in.RetirementAge - in.Age) * 12

	balance := 0.0
	totalEmployee := 0.0
	totalEmployer := 0.0
	salary := in.BasicSalary

	for month := 0; month < months; month++ {
		employee := salary * in.EmployeeContributionRate / 100
		employer := salary * EPFEmployerRate / 100
		totalEmployee += employee
		totalEmployer += employer

		balance += employee + employer
		balance *= 1 + monthlyRate

		if (month+1)%12 == 0 {
			salary *= 1 + in.AnnualIncrease/100
		}
	}

	return domain.Result{
		"employeeContribution": currency(totalEmployee),
		"employerContribution": currency(totalEmployer),
		"interestEarned":       currency(balance - totalEmployee - totalEmployer),
		"maturityAmount":       currency(balance),
		"interestRate":         in.InterestRate,
	}
}

// NPS is the future value of an ordinary annuity of monthly contributions.
// At least 40% of the corpus must be annuitised.
func NPS(monthlyInvestment float64, currentAge, retirementAge int, expectedReturn float64) domain.Result {
	months := float64((retirementAge - currentAge) * 12)
	i := expectedReturn / 12 / 100
	totalInvestment := monthlyInvestment * months

	maturityAmount := totalInvestment
	if i != 0 {
		maturityAmount = monthlyInvestment * ((math.Pow(1+i, months) - 1) / i)
	}

	return domain.Result{
		"totalInvestment":      currency(totalInvestment),
		"interestEarned":       currency(maturityAmount - totalInvestment),
		"maturityAmount":       currency(maturityAmount),
		"minAnnuityInvestment": currency(maturityAmount * NPSMinAnnuityPart),
	}
}

var apyAges = [...]int{18, 25, 30, 35, 40}

var apyContributions = map[int]map[int]float64{
	18: {1000: 42, 2000: 84, 3000: 126, 4000: 168, 5000: 210},
	25: {1000: 76, 2000: 151, 3000: 226, 4000: 301, 5000: 376},
	30: {1000: 116, 2000: 231, 3000: 347, 4000: 462, 5000: 577},
	35: {1000: 181, 2000: 362, 3000: 543, 4000: 724, 5000: 902},
	40: {1000: 291, 2000: 582, 3000: 873, 4000: 1164, 5000: 1454},
}

const apyFallbackContribution = 210

// nearestAPYAge snaps age to the closest tabulated age. Ties keep the lower age.
func nearestAPYAge(age int) int {
	best := apyAges[0]
	for _, a := range apyAges[1:] {
		if absInt(a-age) < absInt(best-age) {
			best = a
		}
	}
	return best
}

// APY looks up the monthly contribution for a guaranteed pension.
func APY(currentAge, pensionAmount int) domain.Result {
	contribution, ok := apyContributions[nearestAPYAge(currentAge)][pensionAmount]
	if !ok {
		contribution = apyFallbackContribution
	}
	yearsToRetirement := APYPensionAge - currentAge

	return domain.Result{
		"monthlyContribution": currency(contribution),
		"pensionAmount":       currency(float64(pensionAmount)),
		"totalInvestment":     currency(contribution * 12 * float64(yearsToRetirement)),
		"yearsToRetirement":   float64(yearsToRetirement),
	}
}

// NSC compounds a National Savings Certificate annually.
func NSC(principal, annualRate, years float64) domain.Result {
	maturityAmount := principal * math.Pow(1+annualRate/100, years)
	p := currency(principal)
	m := currency(maturityAmount)
	return domain.Result{
		"principal":      p,
		"interestEarned": m - p,
		"maturityAmount": m,
		"interestRate":   annualRate,
		"tenure":         years,
	}
}

// PostOfficeMIS pays simple interest monthly on the deposit.
func PostOfficeMIS(principal float64) domain.Result {
	monthlyIncome := principal * MISRate / 100 / 12
	annualIncome := monthlyIncome * 12

	return domain.Result{
		"principal":      currency(principal),
		"monthlyIncome":  currency(monthlyIncome),
		"annualIncome":   currency(annualIncome),
		"fiveYearIncome": currency(annualIncome * 5),
		"interestRate":   MISRate,
	}
}

// SCSS pays simple interest quarterly; the principal is returned at maturity.
func SCSS(principal, annualRate, years float64) domain.Result {
	quarterlyInterest := principal * annualRate / 100 / 4
	annualInterest := quarterlyInterest * 4
	totalInterest := annualInterest * years

	return domain.Result{
		"principal":         currency(principal),
		"quarterlyInterest": currency(quarterlyInterest),
		"annualInterest":    currency(annualInterest),
		"totalInterest":     currency(totalInterest),
		"maturityAmount":    currency(principal + totalInterest),
		"interestRate":      annualRate,
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
