package models

import (
	"math"

	"gorm.io/gorm"
)

// Review is immutable once created. At most one review exists per booking,
// enforced through the booking's feedback flag and the unique booking index.
type Review struct {
	gorm.Model
	SpotID    uint   `json:"spotId" gorm:"not null;index"`
	BookingID uint   `json:"bookingId" gorm:"not null;uniqueIndex"`
	UserID    uint   `json:"userId" gorm:"not null"`
	UserName  string `json:"userName" gorm:"not null"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment" gorm:"not null"`

	IsRealImage       bool `json:"isRealImage" gorm:"not null;default:false"`
	IsSpaceAccurate   bool `json:"isSpaceAccurate" gorm:"not null;default:false"`
	IsOwnerResponsive bool `json:"isOwnerResponsive" gorm:"not null;default:false"`
	IsSafeParking     bool `json:"isSafeParking" gorm:"not null;default:false"`
	HasGoodLighting   bool `json:"hasGoodLighting" gorm:"not null;default:false"`
	IsClean           bool `json:"isClean" gorm:"not null;default:false"`
	IsPaved           bool `json:"isPaved" gorm:"not null;default:false"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewSummary is the aggregate shown on a spot detail: mean rating to one
// decimal, review count, and the set of quality badges earned. A badge is
// present when at least one review confirms the attribute.
type ReviewSummary struct {
	AverageRating float64  `json:"averageRating"`
	Count         int      `json:"count"`
	Badges        []string `json:"badges"`
}

// Badge labels, in display order.
const (
	BadgeRealImages      = "Real Images"
	BadgeAccurate        = "Accurate"
	BadgeResponsiveOwner = "Responsive Owner"
	BadgeSafe            = "Safe"
	BadgeGoodLighting    = "Good Lighting"
	BadgeClean           = "Clean"
	BadgePaved           = "Paved"
)

// SummarizeReviews computes the aggregate for a spot's reviews. An empty
// input produces a zero summary with no badges; callers decide how to render
// "no reviews".
func SummarizeReviews(reviews []Review) ReviewSummary {
	summary := ReviewSummary{Badges: []string{}}
	if len(reviews) == 0 {
		return summary
	}

	var total int
	var realImage, accurate, responsive, safe, lighting, clean, paved bool
	for _, r := range reviews {
		total += r.Rating
		realImage = realImage || r.IsRealImage
		accurate = accurate || r.IsSpaceAccurate
		responsive = responsive || r.IsOwnerResponsive
		safe = safe || r.IsSafeParking
		lighting = lighting || r.HasGoodLighting
		clean = clean || r.IsClean
		paved = paved || r.IsPaved
	}

	summary.Count = len(reviews)
	summary.AverageRating = math.Round(float64(total)/float64(len(reviews))*10) / 10

	if realImage {
		summary.Badges = append(summary.Badges, BadgeRealImages)
	}
	if accurate {
		summary.Badges = append(summary.Badges, BadgeAccurate)
	}
	if responsive {
		summary.Badges = append(summary.Badges, BadgeResponsiveOwner)
	}
	if safe {
		summary.Badges = append(summary.Badges, BadgeSafe)
	}
	if lighting {
		summary.Badges = append(summary.Badges, BadgeGoodLighting)
	}
	if clean {
		summary.Badges = append(summary.Badges, BadgeClean)
	}
	if paved {
		summary.Badges = append(summary.Badges, BadgePaved)
	}

	return summary
}
