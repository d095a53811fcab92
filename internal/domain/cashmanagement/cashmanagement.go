// Package cashmanagement holds treasury accounts and scheduled payments.
package cashmanagement

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TreasuryAccount is a bank or cash account. CurrentBalance may be negative.
type TreasuryAccount struct {
	shared.BaseEntity
	AccountCode    string          `json:"account_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	AccountName    string          `json:"account_name" gorm:"size:255;not null" validate:"required,max=255"`
	AccountType    string          `json:"account_type" gorm:"size:50;not null" validate:"required,max=50"`
	Currency       string          `json:"currency" gorm:"size:3;not null" validate:"required,max=3"`
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
	IsActive       bool            `json:"is_active" gorm:"not null"`
}

func (TreasuryAccount) TableName() string { return "cash_management_treasury_accounts" }

func (a *TreasuryAccount) ApplyDefaults() { a.IsActive = true }

// ScheduleStatus of a scheduled payment
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "PENDING"
	SchedulePaid      ScheduleStatus = "PAID"
	ScheduleCancelled ScheduleStatus = "CANCELLED"
)

type PaymentSchedule struct {
	shared.BaseEntity
	Description     string          `json:"description" gorm:"size:255;not null" validate:"required,max=255"`
	ScheduledDate   shared.Date     `json:"scheduled_date" gorm:"not null" validate:"required"`
	ScheduledAmount decimal.Decimal `json:"scheduled_amount" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	PaidAmount      decimal.Decimal `json:"paid_amount" gorm:"type:numeric(15,2);not null" validate:"dmin=0,dmax_digits=15,dplaces=2"`
	Status          ScheduleStatus  `json:"status" gorm:"size:20;not null" validate:"required,oneof=PENDING PAID CANCELLED"`
}

func (PaymentSchedule) TableName() string { return "cash_management_payment_schedules" }

// Remaining is the unpaid part of the schedule.
func (p *PaymentSchedule) Remaining() decimal.Decimal {
	return p.ScheduledAmount.Sub(p.PaidAmount)
}
