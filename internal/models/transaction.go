package models

import (
	"time"
)

// Transaction types.
const (
	TrxDeposit  = "DEPOSIT"
	TrxWithdraw = "WITHDRAW"
	TrxTransfer = "TRANSFER"
)

// Transaction statuses. FALSE is the platform's historical name for a
// rejected transaction and is kept for API compatibility.
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFalse   = "FALSE"
)

// GoxuToVND is the fixed conversion rate shown to users: 1 Goxu = 1000 VND.
const GoxuToVND = 1000

// WalletTransaction is a single ledger entry. SenderID is the wallet owner
// for deposits and withdrawals; ReceiverID is set only for transfers.
// Status, EmployeeID and Reason change exactly once, when an admin resolves
// a PENDING row; resolved rows are immutable.
type WalletTransaction struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionNo string    `gorm:"column:transaction_no;size:50;not null;index" json:"transaction_no"`
	SenderID      string    `gorm:"column:sender_id;size:36;not null;index" json:"sender_id"`
	ReceiverID    *string   `gorm:"column:receiver_id;size:36;index" json:"receiver_id"`
	Amount        float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Type          string    `gorm:"column:type;size:20;not null" json:"type"`
	Bill          *string   `gorm:"column:bill;size:255" json:"bill"`
	BillChecksum  *string   `gorm:"column:bill_checksum;size:64" json:"bill_checksum,omitempty"`
	Status        string    `gorm:"column:status;size:20;not null;default:PENDING;index" json:"status"`
	EmployeeID    *string   `gorm:"column:employee_id;size:36" json:"employee_id"`
	Reason        *string   `gorm:"column:reason;size:500" json:"reason,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

// IsCredit reports whether the transaction reads as money-in from viewerID's
// perspective: deposits always do, transfers do when the viewer is the
// receiver. Pure function of its inputs.
func IsCredit(t WalletTransaction, viewerID string) bool {
	if t.Type == TrxDeposit {
		return true
	}
	return t.Type == TrxTransfer && t.ReceiverID != nil && *t.ReceiverID == viewerID
}

// Direction maps IsCredit onto the label the dashboard renders per row.
func Direction(t WalletTransaction, viewerID string) string {
	if IsCredit(t, viewerID) {
		return "credit"
	}
	return "debit"
}
