package accounting

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankProfile is a bank account held by the company.
type BankProfile struct {
	shared.BaseEntity
	BankName       string          `json:"bank_name" gorm:"size:255;not null" validate:"required,max=255"`
	AccountNumber  string          `json:"account_number" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	AccountHolder  string          `json:"account_holder" gorm:"size:255;not null" validate:"required,max=255"`
	Currency       string          `json:"currency" gorm:"size:3;not null" validate:"required,oneof=USD EUR GBP JPY"`
	BranchCode     string          `json:"branch_code" gorm:"size:50;not null" validate:"required,max=50"`
	SwiftCode      string          `json:"swift_code" gorm:"size:11;not null" validate:"required,max=11"`
	IBAN           string          `json:"iban" gorm:"size:34" validate:"max=34"`
	OpeningBalance decimal.Decimal `json:"opening_balance" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	IsActive       bool            `json:"is_active" gorm:"not null"`
	CreatedDate    time.Time       `json:"created_date" gorm:"autoCreateTime"`
}

func (BankProfile) TableName() string { return "accounting_bank_profiles" }

func (b *BankProfile) ApplyDefaults() { b.IsActive = true }

// StatementStatus tracks bank statement reconciliation
type StatementStatus string

const (
	StatementStatusPending    StatementStatus = "PENDING"
	StatementStatusReconciled StatementStatus = "RECONCILED"
	StatementStatusApproved   StatementStatus = "APPROVED"
)

// BankStatement is a periodic statement for one bank profile.
type BankStatement struct {
	shared.BaseEntity
	BankProfileID    uuid.UUID       `json:"bank_profile" gorm:"type:uuid;not null;index" validate:"required"`
	StatementDate    shared.Date     `json:"statement_date" gorm:"not null" validate:"required"`
	OpeningBalance   decimal.Decimal `json:"opening_balance" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	ClosingBalance   decimal.Decimal `json:"closing_balance" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	TotalDeposits    decimal.Decimal `json:"total_deposits" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Status           StatementStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING RECONCILED APPROVED"`
}

func (BankStatement) TableName() string { return "accounting_bank_statements" }

func (s *BankStatement) ApplyDefaults() { s.Status = StatementStatusPending }

// ReconciliationStatus tracks a reconciliation entry
type ReconciliationStatus string

const (
	ReconciliationStatusPending    ReconciliationStatus = "PENDING"
	ReconciliationStatusReconciled ReconciliationStatus = "RECONCILED"
	ReconciliationStatusRejected   ReconciliationStatus = "REJECTED"
)

// ReconciliationEntry carries a signed amount awaiting reconciliation.
type ReconciliationEntry struct {
	shared.BaseEntity
	ReferenceNumber string               `json:"reference_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	EntryDate       shared.Date          `json:"entry_date" gorm:"not null" validate:"required"`
	Amount          decimal.Decimal      `json:"amount" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	Status          ReconciliationStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PENDING RECONCILED REJECTED"`
	Description     string               `json:"description" gorm:"type:text"`
	CreatedDate     time.Time            `json:"created_date" gorm:"autoCreateTime"`
}

func (ReconciliationEntry) TableName() string { return "accounting_reconciliation_entries" }

func (e *ReconciliationEntry) ApplyDefaults() { e.Status = ReconciliationStatusPending }
