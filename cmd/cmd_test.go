package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseInputs(t *testing.T) {
	inputs, err := parseInputs([]string{
		"monthlyInvestment=10000",
		" annualRate = 12.5 ",
		"isInclusive=true",
		"startDate=2020-01-01",
		"regime=new",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Inputs{
		"monthlyInvestment": 10000.0,
		"annualRate":        12.5,
		"isInclusive":       true,
		"startDate":         "2020-01-01",
		"regime":            "new",
	}, inputs)

	_, err = parseInputs([]string{"years"})
	assert.Error(t, err)

	_, err = parseInputs([]string{"=10"})
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, domain.SIP, domain.Result{
		"totalInvestment": 1200000,
		"wealthGained":    1040359,
		"maturityAmount":  2240359,
		"extra":           1.5,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Invested amount")
	assert.Contains(t, lines[0], "₹1200000")
	assert.Contains(t, lines[2], "Total value")
	assert.Contains(t, lines[3], "extra")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "₹1500", formatValue(1500, domain.FormatCurrency, ""))
	assert.Equal(t, "₹12.50", formatValue(12.5, domain.FormatCurrency2, ""))
	assert.Equal(t, "18.87%", formatValue(18.87, domain.FormatPercentage, ""))
	assert.Equal(t, "2045 year", formatValue(2045, domain.FormatText, "year"))
}

func TestConstraint(t *testing.T) {
	lo, hi := 1.0, 50.0
	assert.Equal(t, "1..50", constraint(domain.ValidationRule{Min: &lo, Max: &hi}))
	assert.Equal(t, ">= 1", constraint(domain.ValidationRule{Min: &lo}))
	assert.Equal(t, "new|old", constraint(domain.ValidationRule{Enum: []string{"new", "old"}}))
	assert.Equal(t, "-", constraint(domain.ValidationRule{Type: domain.RuleBoolean}))
}

func TestCalcCommand(t *testing.T) {
	out, err := execute(t, "calc", "SIP",
		"-i", "monthlyInvestment=10000",
		"-i", "annualRate=12",
		"-i", "years=10",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Total value")
	assert.Contains(t, out, "₹2240359")
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules", "gst")
	require.NoError(t, err)

	assert.Contains(t, out, "gstRate")
	assert.Contains(t, out, "0|5|12|18|28")
	assert.Contains(t, out, "isInclusive?")

	_, err = execute(t, "rules", "crypto")
	assert.ErrorIs(t, err, domain.ErrInvalidCalculatorType)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "emi")
	require.NoError(t, err)
	assert.Contains(t, out, "EMI Calculator")
	assert.Contains(t, out, "principal")

	_, err = execute(t, "catalog", "crypto")
	assert.Error(t, err)
}
