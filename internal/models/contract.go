package models

import (
	"time"
)

const (
	ContractDraft  = "DRAFT"
	ContractSigned = "SIGNED"
)

type Contract struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"column:user_id;size:36;not null;index" json:"user_id"`
	Title     string     `gorm:"column:title;size:255;not null" json:"title"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	Status    string     `gorm:"column:status;size:20;not null;default:DRAFT" json:"status"`
	SignedAt  *time.Time `gorm:"column:signed_at" json:"signed_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}
