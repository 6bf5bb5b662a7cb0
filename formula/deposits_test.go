package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestFD(t *testing.T) {
	assert.Equal(t, domain.Result{
		"principal":      100000,
		"interestEarned": 41478,
		"maturityAmount": 141478,
		"interestRate":   7,
	}, FD(100000, 7, 5, 4))
}

func TestRD(t *testing.T) {
	r := RD(5000, 6.5, 5)

	assert.Equal(t, 300000.0, r["totalInvestment"])
	assert.Equal(t, 354957.0, r["maturityAmount"])
	assert.Equal(t, 54957.0, r["interestEarned"])
}

func TestRDRoundsEachDepositBeforeSumming(t *testing.T) {
	// 1 at 6% for one month: every deposit matures to a little over 1 and
	// rounds back to 1, so nothing is earned.
	r := RD(1, 6, 1)

	assert.Equal(t, 12.0, r["maturityAmount"])
	assert.Equal(t, 0.0, r["interestEarned"])
}

func TestSimpleAndCompoundInterest(t *testing.T) {
	assert.Equal(t, domain.Result{
		"principal":    100000,
		"interest":     20000,
		"totalAmount":  120000,
		"interestRate": 10,
		"years":        2,
	}, SimpleInterest(100000, 10, 2))

	assert.Equal(t, domain.Result{
		"principal":          100000,
		"compoundInterest":   21000,
		"totalAmount":        121000,
		"simpleInterest":     20000,
		"additionalInterest": 1000,
		"interestRate":       10,
	}, CompoundInterest(100000, 10, 2, 1))
}

func TestInflation(t *testing.T) {
	r := Inflation(100000, 6, 10)

	assert.Equal(t, 179085.0, r["futureValue"])
	assert.Equal(t, 79085.0, r["valueErosion"])
	assert.Equal(t, 55.84, r["purchasingPower"])
}
