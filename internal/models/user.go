package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleVehicleOwner UserRole = "vehicle_owner"
	RoleSpaceOwner   UserRole = "space_owner"
	RoleAdmin        UserRole = "admin"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	gorm.Model
	Name               string  `json:"name" gorm:"column:name;not null"`
	Email              string  `json:"email" gorm:"column:email;unique;not null"`
	Password           string  `json:"-" gorm:"-"` // Temporary field for password handling
	PasswordHash       string  `json:"-" gorm:"column:password_hash;not null"`
	Role               string  `json:"role" gorm:"column:role;not null;default:'vehicle_owner'"`
	AvatarURL          string  `json:"avatarUrl" gorm:"column:avatar_url"`
	VerificationStatus string  `json:"verificationStatus" gorm:"column:verification_status"`
	Earnings           float64 `json:"earnings" gorm:"column:earnings;not null;default:0"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// CanSwitchRole reports whether the user may change roles. Admin accounts
// keep their role for the lifetime of the account.
func (u *User) CanSwitchRole() bool {
	return u.Role != string(RoleAdmin)
}
