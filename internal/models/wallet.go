package models

import (
	"time"
)

// Wallet tracks a user's Goxu point balance. One row per user. Pending
// withdrawals debit the balance up front; a rejected withdrawal refunds it.
type Wallet struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;not null;uniqueIndex" json:"user_id"`
	Username  string    `gorm:"column:username;size:150;not null" json:"username"`
	Balance   float64   `gorm:"column:balance;type:decimal(20,2);default:0.00" json:"balance"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}
