package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is the single authoritative record of a reservation request.
// "My bookings" and "requests for my spots" are projections over this
// table, never separate copies.
type Booking struct {
	gorm.Model
	SpotID uint         `json:"spotId" gorm:"not null"`
	Spot   *ParkingSpot `json:"spot,omitempty" gorm:"foreignKey:SpotID"`
	UserID uint         `json:"userId" gorm:"not null"`
	User   *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`

	// Snapshot of the spot at booking time, kept for display after the
	// listing changes or disappears.
	SpotName   string  `json:"spotName" gorm:"not null"`
	HourlyRate float64 `json:"hourlyRate" gorm:"not null"`

	StartTime   time.Time     `json:"startTime" gorm:"not null"`
	EndTime     time.Time     `json:"endTime" gorm:"not null"`
	Status      BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalCost   float64       `json:"totalCost" gorm:"not null"`
	HasFeedback bool          `json:"hasFeedback" gorm:"not null;default:false"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// IsPending reports whether the booking still awaits the owner's decision.
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// CanBeDecided reports whether an approve/reject decision is still allowed.
// A booking leaves pending at most once.
func (b *Booking) CanBeDecided() bool {
	return b.Status == BookingStatusPending
}

// IsUpcoming reports whether the booking is approved and starts after now.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Status == BookingStatusApproved && b.StartTime.After(now)
}

// IsPast reports whether the stay is over: either the review flow marked it
// completed, or it was approved and its end time has passed. The status
// value itself is only flipped to completed when feedback is recorded.
func (b *Booking) IsPast(now time.Time) bool {
	if b.Status == BookingStatusCompleted {
		return true
	}
	return b.Status == BookingStatusApproved && b.EndTime.Before(now)
}

// AwaitsReview reports whether the requester may still leave feedback.
func (b *Booking) AwaitsReview(now time.Time) bool {
	return b.IsPast(now) && !b.HasFeedback
}
