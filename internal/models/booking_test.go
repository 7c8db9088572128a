package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingDecisionGuard(t *testing.T) {
	booking := Booking{Status: BookingStatusPending}
	assert.True(t, booking.CanBeDecided())
	assert.True(t, booking.IsPending())

	for _, status := range []BookingStatus{
		BookingStatusApproved,
		BookingStatusRejected,
		BookingStatusCompleted,
	} {
		booking.Status = status
		assert.False(t, booking.CanBeDecided(), "status %s must be terminal", status)
		assert.False(t, booking.IsPending())
	}
}

func TestBookingViews(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("approved future booking is upcoming", func(t *testing.T) {
		b := Booking{
			Status:    BookingStatusApproved,
			StartTime: now.Add(2 * time.Hour),
			EndTime:   now.Add(4 * time.Hour),
		}
		assert.True(t, b.IsUpcoming(now))
		assert.False(t, b.IsPast(now))
		assert.False(t, b.AwaitsReview(now))
	})

	t.Run("pending future booking is not upcoming", func(t *testing.T) {
		b := Booking{
			Status:    BookingStatusPending,
			StartTime: now.Add(2 * time.Hour),
			EndTime:   now.Add(4 * time.Hour),
		}
		assert.False(t, b.IsUpcoming(now))
	})

	t.Run("approved ended booking is past and awaits review", func(t *testing.T) {
		b := Booking{
			Status:    BookingStatusApproved,
			StartTime: now.Add(-4 * time.Hour),
			EndTime:   now.Add(-2 * time.Hour),
		}
		assert.True(t, b.IsPast(now))
		assert.True(t, b.AwaitsReview(now))
	})

	t.Run("reviewed booking no longer awaits review", func(t *testing.T) {
		b := Booking{
			Status:      BookingStatusCompleted,
			StartTime:   now.Add(-4 * time.Hour),
			EndTime:     now.Add(-2 * time.Hour),
			HasFeedback: true,
		}
		assert.True(t, b.IsPast(now))
		assert.False(t, b.AwaitsReview(now))
	})

	t.Run("rejected booking is never past or upcoming", func(t *testing.T) {
		b := Booking{
			Status:    BookingStatusRejected,
			StartTime: now.Add(-4 * time.Hour),
			EndTime:   now.Add(-2 * time.Hour),
		}
		assert.False(t, b.IsPast(now))
		assert.False(t, b.IsUpcoming(now))
		assert.False(t, b.AwaitsReview(now))
	})

	t.Run("approved booking in progress is neither upcoming nor past", func(t *testing.T) {
		b := Booking{
			Status:    BookingStatusApproved,
			StartTime: now.Add(-1 * time.Hour),
			EndTime:   now.Add(1 * time.Hour),
		}
		assert.False(t, b.IsUpcoming(now))
		assert.False(t, b.IsPast(now))
	})
}
