package crm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOpportunity_Weighted(t *testing.T) {
	o := &Opportunity{OpportunityAmount: decimal.RequireFromString("12500.00"), ProbabilityPercentage: 35}
	assert.Equal(t, "4375", o.Weighted().String())
}

func TestDefaults(t *testing.T) {
	l := &Lead{}
	l.ApplyDefaults()
	assert.Equal(t, LeadNew, l.Status)

	c := &Campaign{}
	c.ApplyDefaults()
	assert.Equal(t, CampaignPlanning, c.Status)
}
