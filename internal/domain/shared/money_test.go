package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
	}{
		{"single unit", 1, "0.10", "0.1"},
		{"many units", 12, "19.99", "239.88"},
		{"zero quantity", 0, "5.00", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.quantity, decimal.RequireFromString(tt.unitPrice))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestSum_IsExact(t *testing.T) {
	dime := decimal.RequireFromString("0.10")
	total := Sum(LineTotal(1, dime), LineTotal(1, dime), LineTotal(1, dime))

	assert.Equal(t, "0.30", total.StringFixed(2))
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, Sum().IsZero())
}
