// Package authentication stores user accounts and permission groups.
// Login and session handling live outside this service.
package authentication

import (
	"strings"
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Group bundles permission codes.
type Group struct {
	shared.BaseEntity
	Name        string      `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
	Description string      `json:"description" gorm:"type:text"`
	Permissions shared.JSON `json:"permissions"`
	IsActive    bool        `json:"is_active" gorm:"not null"`
	CreatedDate time.Time   `json:"created_date" gorm:"autoCreateTime"`
}

func (Group) TableName() string { return "authentication_group" }

func (g *Group) ApplyDefaults() {
	g.Permissions = shared.JSON("[]")
	g.IsActive = true
}

// UserStatus of an account
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

// User is an account. Password is write-only: it is hashed before storage
// and never serialized.
type User struct {
	shared.BaseEntity
	Username    string      `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,max=150"`
	Email       string      `json:"email" gorm:"size:254;not null;uniqueIndex" validate:"required,email,max=254"`
	FirstName   string      `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName    string      `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Password    string      `json:"password,omitempty" gorm:"size:255;not null" validate:"required,max=128"`
	Status      UserStatus  `json:"status" gorm:"size:20;not null" validate:"oneof=ACTIVE INACTIVE SUSPENDED"`
	IsStaff     bool        `json:"is_staff" gorm:"not null"`
	IsSuperuser bool        `json:"is_superuser" gorm:"not null"`
	Groups      shared.JSON `json:"groups"`
	LastLogin   *time.Time  `json:"last_login"`
	DateJoined  time.Time   `json:"date_joined" gorm:"autoCreateTime"`
	UpdatedDate time.Time   `json:"updated_date" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "authentication_user" }

func (u *User) ApplyDefaults() {
	u.Status = UserActive
	u.Groups = shared.JSON("[]")
}

// Prepare hashes a plain-text password. Stored hashes pass through untouched.
func (u *User) Prepare() error {
	if u.Password == "" || isBcryptHash(u.Password) {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// Redact clears the password hash before the user leaves the service.
func (u *User) Redact() { u.Password = "" }

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
