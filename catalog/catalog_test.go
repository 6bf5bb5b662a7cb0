package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/validation"
)

func ids(list []Calculator) []domain.CalculatorType {
	var out []domain.CalculatorType
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestCatalogCoversEveryCalculator(t *testing.T) {
	assert.ElementsMatch(t, domain.CalculatorTypes, ids(All()))
}

func TestCatalogFieldsHaveRules(t *testing.T) {
	for _, c := range All() {
		rules, ok := validation.Rules(c.ID)
		require.True(t, ok, c.ID)

		for _, f := range c.Fields {
			idx := slices.IndexFunc(rules, func(r domain.ValidationRule) bool { return r.Field == f.Name })
			if !assert.NotEqual(t, -1, idx, "%s.%s has no rule", c.ID, f.Name) {
				continue
			}
			rule := rules[idx]
			if rule.Type != domain.RuleEnum {
				continue
			}
			for _, o := range f.Options {
				assert.Contains(t, rule.Enum, o.Value, "%s.%s option", c.ID, f.Name)
			}
		}
	}
}

func TestCatalogResultFormats(t *testing.T) {
	valid := []domain.FormatKind{
		domain.FormatCurrency, domain.FormatCurrency2, domain.FormatPercentage, domain.FormatText,
	}
	for _, c := range All() {
		require.NotEmpty(t, c.Results, c.ID)
		primaries := 0
		for _, r := range c.Results {
			assert.Contains(t, valid, r.Format, "%s.%s", c.ID, r.Key)
			if r.Primary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries, "%s primary results", c.ID)
	}
}

func TestGet(t *testing.T) {
	c, ok := Get(domain.XIRR)
	require.True(t, ok)
	assert.Equal(t, "XIRR Calculator", c.Name)

	f, ok := c.Field("frequency")
	require.True(t, ok)
	assert.Equal(t, FieldSelect, f.Type)
	assert.Len(t, f.Options, 5)

	_, ok = Get("crypto")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		"Investment", "Government Schemes", "Retirement", "Deposits", "Loans",
		"Interest", "Salary", "Tax", "Business", "Trading", "Utility",
	}, Categories())

	groups := ByCategory()
	assert.Len(t, groups, 11)
	assert.Len(t, groups["Investment"], 7)
	assert.Len(t, groups["Loans"], 5)
	assert.Equal(t, domain.SIP, groups["Investment"][0].ID)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		term string
		want []domain.CalculatorType
	}{
		{"provident", []domain.CalculatorType{domain.PPF, domain.EPF}},
		{"GRATUITY", []domain.CalculatorType{domain.Gratuity}},
		{"metro", []domain.CalculatorType{domain.HRA}},
		{"  Sip ", []domain.CalculatorType{domain.SIP, domain.StepUpSIP}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(tt.term)))
		})
	}

	assert.Len(t, Search(""), len(domain.CalculatorTypes))
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	list[0].Name = "changed"

	c, _ := Get(list[0].ID)
	assert.NotEqual(t, "changed", c.Name)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := parse([]byte("calculators:\n  - id: sip\n  - id: sip\n"))
	assert.Error(t, err)

	_, err = parse([]byte("calculators: ["))
	assert.Error(t, err)
}
