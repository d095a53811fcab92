// Package sites lists the organization's physical locations.
package sites

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
)

type Site struct {
	shared.BaseEntity
	SiteCode    string    `json:"site_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	SiteName    string    `json:"site_name" gorm:"size:255;not null" validate:"required,max=255"`
	Address     string    `json:"address" gorm:"type:text;not null" validate:"required"`
	City        string    `json:"city" gorm:"size:100;not null" validate:"required,max=100"`
	State       string    `json:"state" gorm:"size:100;not null" validate:"required,max=100"`
	Country     string    `json:"country" gorm:"size:100;not null" validate:"required,max=100"`
	ZipCode     string    `json:"zip_code" gorm:"size:20;not null" validate:"required,max=20"`
	Phone       string    `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Email       string    `json:"email" gorm:"size:254;not null" validate:"required,email,max=254"`
	SiteManager string    `json:"site_manager" gorm:"size:255;not null" validate:"required,max=255"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`
}

func (Site) TableName() string { return "sites_site" }

func (s *Site) ApplyDefaults() { s.IsActive = true }
