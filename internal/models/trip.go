package models

import (
	"time"
)

// Trip request statuses. All transitions are computed server side:
// PENDING -> CONFIRMED | REJECTED | CANCELLED, CONFIRMED -> ARRIVED.
const (
	TripPending   = "PENDING"
	TripConfirmed = "CONFIRMED"
	TripRejected  = "REJECTED"
	TripCancelled = "CANCELLED"
	TripArrived   = "ARRIVED"
)

// TripRequest is a partner referring guests to a service point.
// RewardSnapshot is the service point's per-guest Goxu rate frozen at
// creation time, so later rate changes never affect an open request.
type TripRequest struct {
	ID               int        `gorm:"primaryKey;autoIncrement" json:"trip_id"`
	PartnerID        string     `gorm:"column:partner_id;size:36;not null;index" json:"partner_id"`
	ServicePointID   string     `gorm:"column:service_point_id;size:36;not null;index" json:"service_point_id"`
	GuestCount       int        `gorm:"column:guest_count;not null" json:"guest_count"`
	ActualGuestCount *int       `gorm:"column:actual_guest_count" json:"actual_guest_count,omitempty"`
	Status           string     `gorm:"column:status;size:20;not null;default:PENDING;index" json:"status"`
	RewardSnapshot   float64    `gorm:"column:reward_snapshot;type:decimal(20,2);not null" json:"reward_snapshot"`
	ArrivalTime      *time.Time `gorm:"column:arrival_time" json:"arrival_time,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TripRequest) TableName() string {
	return "trip_requests"
}
