package models

import (
	"time"
)

// Bank is static reference data (the VietQR bank directory). Seeded at
// startup and served without revalidation semantics.
type Bank struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"column:name;size:150;not null" json:"name"`
	Code              string    `gorm:"column:code;size:20;not null" json:"code"`
	Bin               string    `gorm:"column:bin;size:20;not null" json:"bin"`
	ShortName         string    `gorm:"column:short_name;size:50;not null" json:"shortName"`
	Logo              string    `gorm:"column:logo;size:255" json:"logo"`
	TransferSupported bool      `gorm:"column:transfer_supported;default:true" json:"transferSupported"`
	LookupSupported   bool      `gorm:"column:lookup_supported;default:true" json:"lookupSupported"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Bank) TableName() string {
	return "banks"
}

// CompanyBankAccount is the beneficiary account shown by the deposit QR
// flow. BankID is a proper foreign key to Bank; the legacy data kept the
// bank as a display string, which forced a fuzzy match at read time.
// Exactly one row is expected to be active.
type CompanyBankAccount struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	BankID      int    `gorm:"column:bank_id;not null" json:"bank_id"`
	AccountName string `gorm:"column:account_name;size:250;not null" json:"accountName"`
	AccountNo   string `gorm:"column:account_no;size:50;not null" json:"accountNo"`
	// Transfer-memo template. "{username}" is replaced with the depositing
	// user's username.
	Content   string    `gorm:"column:content;size:255" json:"content"`
	IsActive  bool      `gorm:"column:is_active;default:false;index" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (CompanyBankAccount) TableName() string {
	return "company_bank_accounts"
}
