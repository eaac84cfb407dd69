package models

import "time"

// Session is one refresh-token grant. Expired rows are reaped by a
// background ticker in main.
type Session struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserId       uint      `gorm:"index;not null" json:"userId"`
	UserType     string    `gorm:"size:10;not null" json:"userType"`
	RefreshToken string    `gorm:"size:191;uniqueIndex;not null" json:"-"`
	DeviceInfo   string    `gorm:"size:255" json:"deviceInfo"`
	IpAddress    string    `gorm:"size:64" json:"ipAddress"`
	ExpiresAt    time.Time `gorm:"index;not null" json:"expiresAt"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
