package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		kind  domain.FormatKind
		want  float64
	}{
		{1234.5, domain.FormatCurrency, 1235},
		{-1234.5, domain.FormatCurrency, -1235},
		{1234.4999, domain.FormatCurrency, 1234},
		{12.345, domain.FormatCurrency2, 12.35},
		{14.8698, domain.FormatPercentage, 14.87},
		{3.14159, domain.FormatText, 3.14159},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.value, tt.kind), "%v as %s", tt.value, tt.kind)
	}
}

func TestFormatPassesNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Format(math.NaN(), domain.FormatCurrency)))
	assert.True(t, math.IsInf(Format(math.Inf(1), domain.FormatPercentage), 1))
}
