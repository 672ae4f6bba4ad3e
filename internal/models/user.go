package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin      = "ADMIN"
	RolePartner    = "PARTNER"
	RoleCustomer   = "CUSTOMER"
	RoleIntroducer = "INTRODUCER"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"column:username;size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	FullName     string    `gorm:"column:full_name;size:255" json:"full_name"`
	Phone        string    `gorm:"column:phone;size:20" json:"phone"`
	Role         string    `gorm:"column:role;size:20;not null;index" json:"role"`
	Active       bool      `gorm:"column:active;default:true" json:"active"`
	// Bank destination for withdrawals. Empty means no bank info on file.
	BankName      string `gorm:"column:bank_name;size:150" json:"bank_name"`
	BankAccountNo string `gorm:"column:bank_account_no;size:50" json:"bank_account_no"`
	BankAccount   string `gorm:"column:bank_account_name;size:250" json:"bank_account_name"`
	// Raw location string as stored by the backoffice, either
	// "POINT(lng lat)" or "lat,lng". Parsed on demand, never written back.
	Location   string    `gorm:"column:location;size:100" json:"location"`
	RewardRate float64   `gorm:"column:reward_rate;type:decimal(20,2);default:0" json:"reward_rate"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasBankInfo reports whether the user has a withdrawal destination on file.
func (u *User) HasBankInfo() bool {
	return u.BankName != "" && u.BankAccountNo != ""
}

var ErrBadLocation = errors.New("unrecognized location format")

// ParseLocation extracts lat/lng from a stored location string. Supported
// forms are "POINT(lng lat)" (WKT, longitude first) and "lat,lng".
func ParseLocation(raw string) (lat, lng float64, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0, ErrBadLocation
	}

	if strings.HasPrefix(strings.ToUpper(s), "POINT(") && strings.HasSuffix(s, ")") {
		inner := s[strings.Index(s, "(")+1 : len(s)-1]
		parts := strings.Fields(inner)
		if len(parts) != 2 {
			return 0, 0, ErrBadLocation
		}
		lng, err = strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, ErrBadLocation
		}
		lat, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, ErrBadLocation
		}
		return lat, lng, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, ErrBadLocation
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrBadLocation
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrBadLocation
	}
	return lat, lng, nil
}
