package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOLineItem_Prepare(t *testing.T) {
	item := &POLineItem{Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")}
	require.NoError(t, item.Prepare())
	assert.True(t, decimal.RequireFromString("59.97").Equal(item.LineTotal))
}

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}
	s.ApplyDefaults()
	assert.True(t, s.ThreeWayMatchingRequired)
	assert.False(t, s.AutoPOGeneration)
	assert.Equal(t, 30, s.DefaultPaymentTermsDays)
	assert.True(t, s.ApprovalThresholdAmount.IsZero())
}
