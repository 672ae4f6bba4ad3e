package models

import (
	"time"
)

// ArchivedTransaction is a cold copy of a resolved WalletTransaction moved
// out of the hot table by the nightly archiver.
type ArchivedTransaction struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionNo string    `gorm:"column:transaction_no;size:50;not null;index" json:"transaction_no"`
	SenderID      string    `gorm:"column:sender_id;size:36;not null" json:"sender_id"`
	ReceiverID    *string   `gorm:"column:receiver_id;size:36" json:"receiver_id"`
	Amount        float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Type          string    `gorm:"column:type;size:20;not null" json:"type"`
	Bill          *string   `gorm:"column:bill;size:255" json:"bill"`
	Status        string    `gorm:"column:status;size:20;not null" json:"status"`
	EmployeeID    *string   `gorm:"column:employee_id;size:36" json:"employee_id"`
	Reason        *string   `gorm:"column:reason;size:500" json:"reason"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	ArchivedAt    time.Time `gorm:"column:archived_at;autoCreateTime" json:"archived_at"`
}

func (ArchivedTransaction) TableName() string {
	return "archived_transactions"
}
