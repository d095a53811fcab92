// Package crm holds leads, opportunities, contacts, contracts and campaigns.
package crm

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LeadStatus is the qualification stage of a lead
type LeadStatus string

const (
	LeadNew         LeadStatus = "NEW"
	LeadContacted   LeadStatus = "CONTACTED"
	LeadQualified   LeadStatus = "QUALIFIED"
	LeadUnqualified LeadStatus = "UNQUALIFIED"
	LeadConverted   LeadStatus = "CONVERTED"
)

type Lead struct {
	shared.BaseEntity
	LeadName    string     `json:"lead_name" gorm:"size:255;not null" validate:"required,max=255"`
	Company     string     `json:"company" gorm:"size:255" validate:"max=255"`
	Email       string     `json:"email" gorm:"size:254;not null" validate:"required,email,max=254"`
	Phone       string     `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	LeadSource  string     `json:"lead_source" gorm:"size:100;not null" validate:"required,max=100"`
	Status      LeadStatus `json:"status" gorm:"size:20;not null" validate:"oneof=NEW CONTACTED QUALIFIED UNQUALIFIED CONVERTED"`
	AssignedTo  string     `json:"assigned_to" gorm:"size:255;not null" validate:"required,max=255"`
	CreatedDate time.Time  `json:"created_date" gorm:"autoCreateTime"`
}

func (Lead) TableName() string { return "crm_leads" }

func (l *Lead) ApplyDefaults() { l.Status = LeadNew }

// OpportunityStatus of a sales opportunity
type OpportunityStatus string

const (
	OpportunityOpen   OpportunityStatus = "OPEN"
	OpportunityWon    OpportunityStatus = "WON"
	OpportunityLost   OpportunityStatus = "LOST"
	OpportunityOnHold OpportunityStatus = "ON_HOLD"
)

type Opportunity struct {
	shared.BaseEntity
	OpportunityName       string            `json:"opportunity_name" gorm:"size:255;not null" validate:"required,max=255"`
	CustomerName          string            `json:"customer_name" gorm:"size:255;not null" validate:"required,max=255"`
	OpportunityAmount     decimal.Decimal   `json:"opportunity_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	ProbabilityPercentage int               `json:"probability_percentage" gorm:"not null" validate:"min=0,max=100"`
	ExpectedCloseDate     shared.Date       `json:"expected_close_date" gorm:"not null" validate:"required"`
	Status                OpportunityStatus `json:"status" gorm:"size:20;not null" validate:"oneof=OPEN WON LOST ON_HOLD"`
	CreatedDate           time.Time         `json:"created_date" gorm:"autoCreateTime"`
}

func (Opportunity) TableName() string { return "crm_opportunities" }

func (o *Opportunity) ApplyDefaults() { o.Status = OpportunityOpen }

// Weighted returns the amount scaled by the win probability.
func (o *Opportunity) Weighted() decimal.Decimal {
	return o.OpportunityAmount.Mul(decimal.NewFromInt(int64(o.ProbabilityPercentage))).Div(decimal.NewFromInt(100)).Round(2)
}

type Contact struct {
	shared.BaseEntity
	FirstName   string    `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName    string    `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email       string    `json:"email" gorm:"size:254;not null" validate:"required,email,max=254"`
	Phone       string    `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Company     string    `json:"company" gorm:"size:255" validate:"max=255"`
	JobTitle    string    `json:"job_title" gorm:"size:100" validate:"max=100"`
	Address     string    `json:"address" gorm:"type:text"`
	City        string    `json:"city" gorm:"size:100" validate:"max=100"`
	State       string    `json:"state" gorm:"size:100" validate:"max=100"`
	ZipCode     string    `json:"zip_code" gorm:"size:20" validate:"max=20"`
	Country     string    `json:"country" gorm:"size:100" validate:"max=100"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`
}

func (Contact) TableName() string { return "crm_contacts" }

// ContractStatus of a customer contract
type ContractStatus string

const (
	ContractDraft     ContractStatus = "DRAFT"
	ContractActive    ContractStatus = "ACTIVE"
	ContractExpired   ContractStatus = "EXPIRED"
	ContractCancelled ContractStatus = "CANCELLED"
)

type Contract struct {
	shared.BaseEntity
	ContractNumber string          `json:"contract_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	ContractName   string          `json:"contract_name" gorm:"size:255;not null" validate:"required,max=255"`
	CustomerName   string          `json:"customer_name" gorm:"size:255;not null" validate:"required,max=255"`
	StartDate      shared.Date     `json:"start_date" gorm:"not null" validate:"required"`
	EndDate        shared.Date     `json:"end_date" gorm:"not null" validate:"required"`
	ContractValue  decimal.Decimal `json:"contract_value" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status         ContractStatus  `json:"status" gorm:"size:20;not null" validate:"oneof=DRAFT ACTIVE EXPIRED CANCELLED"`
	DocumentPath   string          `json:"document_path" gorm:"size:500" validate:"max=500"`
}

func (Contract) TableName() string { return "crm_contracts" }

func (c *Contract) ApplyDefaults() { c.Status = ContractDraft }

// CampaignStatus of a marketing campaign
type CampaignStatus string

const (
	CampaignPlanning  CampaignStatus = "PLANNING"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
)

type Campaign struct {
	shared.BaseEntity
	CampaignName string          `json:"campaign_name" gorm:"size:255;not null" validate:"required,max=255"`
	CampaignType string          `json:"campaign_type" gorm:"size:100;not null" validate:"required,max=100"`
	Status       CampaignStatus  `json:"status" gorm:"size:20;not null" validate:"oneof=PLANNING ACTIVE PAUSED COMPLETED"`
	StartDate    shared.Date     `json:"start_date" gorm:"not null" validate:"required"`
	EndDate      shared.Date     `json:"end_date" gorm:"not null" validate:"required"`
	Budget       decimal.Decimal `json:"budget" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	SpentAmount  decimal.Decimal `json:"spent_amount" gorm:"type:numeric(15,2);not null" validate:"dmin=0,dmax_digits=15,dplaces=2"`
	Description  string          `json:"description" gorm:"type:text"`
}

func (Campaign) TableName() string { return "crm_campaigns" }

func (c *Campaign) ApplyDefaults() { c.Status = CampaignPlanning }
