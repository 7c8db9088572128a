package models

import "gorm.io/gorm"

// VerificationRequest holds the identity documents a space owner submits
// before listing spots. One open request per owner; resubmitting documents
// refreshes the pending request.
type VerificationRequest struct {
	gorm.Model
	OwnerID   uint     `json:"ownerId" gorm:"not null;index"`
	Owner     *User    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Documents []string `json:"documents" gorm:"serializer:json;not null"`
	Status    string   `json:"status" gorm:"not null;default:'pending'"`
}

// TableName specifies the table name
func (VerificationRequest) TableName() string {
	return "verification_requests"
}

// CanBeDecided reports whether an admin decision is still allowed.
func (v *VerificationRequest) CanBeDecided() bool {
	return v.Status == string(VerificationPending)
}
