package models

import "time"

const (
	UserTypeMain = "main"
	UserTypeSub  = "sub"
)

// User is an account owner. Their email is the tenant id every synced
// record is scoped by.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"size:191;not null" json:"-"`
	FullName          string    `gorm:"size:191" json:"fullName"`
	Phone             string    `gorm:"size:50" json:"phone"`
	EmailVerified     bool      `gorm:"default:false" json:"emailVerified"`
	VerificationToken string    `gorm:"size:100;index" json:"-"`
	ResetToken        string    `gorm:"size:100;index" json:"-"`
	ResetTokenExpires time.Time `json:"-"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
