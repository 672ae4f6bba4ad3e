package models

import (
	"time"
)

type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Read      bool      `gorm:"column:read;default:false" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

type ChatMessage struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    string    `gorm:"column:room_id;size:64;not null;index" json:"room_id"`
	SenderID  string    `gorm:"column:sender_id;size:36;not null" json:"sender_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Read      bool      `gorm:"column:read;default:false" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
