package accounting

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryType is the side of a ledger posting
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// LedgerEntry is one general ledger posting.
type LedgerEntry struct {
	shared.BaseEntity
	EntryNumber       string          `json:"entry_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	AccountCode       string          `json:"account_code" gorm:"size:50;not null;index" validate:"required,max=50"`
	EntryType         EntryType       `json:"entry_type" gorm:"size:20;not null" validate:"required,oneof=DEBIT CREDIT"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	EntryDate         shared.Date     `json:"entry_date" gorm:"not null" validate:"required"`
	ReferenceDocument string          `json:"reference_document" gorm:"size:100;not null" validate:"required,max=100"`
	Description       string          `json:"description" gorm:"type:text"`
	PostedDate        time.Time       `json:"posted_date" gorm:"autoCreateTime"`
}

func (LedgerEntry) TableName() string { return "accounting_ledger_entries" }

// Currency defines an exchange rate against the base currency.
type Currency struct {
	shared.BaseEntity
	Code           string          `json:"code" gorm:"size:3;not null;uniqueIndex" validate:"required,max=3"`
	Name           string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Symbol         string          `json:"symbol" gorm:"size:10;not null" validate:"required,max=10"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate" gorm:"type:numeric(10,4);not null" validate:"dmax_digits=10,dplaces=4"`
	IsBaseCurrency bool            `json:"is_base_currency" gorm:"not null"`
}

func (Currency) TableName() string { return "accounting_currencies" }

func (c *Currency) ApplyDefaults() { c.ExchangeRate = decimal.NewFromInt(1) }

// TaxType classifies a tax rate
type TaxType string

const (
	TaxTypeIncome  TaxType = "INCOME_TAX"
	TaxTypeSales   TaxType = "SALES_TAX"
	TaxTypeVAT     TaxType = "VAT"
	TaxTypePayroll TaxType = "PAYROLL_TAX"
)

// TaxRate is a percentage rate valid over a period.
type TaxRate struct {
	shared.BaseEntity
	TaxCode       string          `json:"tax_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	TaxName       string          `json:"tax_name" gorm:"size:255;not null" validate:"required,max=255"`
	TaxType       TaxType         `json:"tax_type" gorm:"size:20;not null" validate:"required,oneof=INCOME_TAX SALES_TAX VAT PAYROLL_TAX"`
	Rate          decimal.Decimal `json:"rate" gorm:"type:numeric(5,2);not null" validate:"required,dmin=0,dmax=100,dmax_digits=5,dplaces=2"`
	EffectiveDate shared.Date     `json:"effective_date" gorm:"not null" validate:"required"`
	EndDate       *shared.Date    `json:"end_date"`
}

func (TaxRate) TableName() string { return "accounting_tax_rates" }
