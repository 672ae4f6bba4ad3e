package models

import (
	"time"
)

const (
	TicketOpen     = "OPEN"
	TicketResolved = "RESOLVED"
)

type SupportTicket struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index" json:"user_id"`
	Subject   string    `gorm:"column:subject;size:255;not null" json:"subject"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Status    string    `gorm:"column:status;size:20;not null;default:OPEN" json:"status"`
	Reply     string    `gorm:"column:reply;type:text" json:"reply"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
