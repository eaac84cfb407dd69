package models

import (
	"time"

	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
)

// SubUser is a delegated account working inside the parent owner's
// tenant. Its permission set is materialized at write time (role table
// merged with overrides) so authorization is a pure lookup.
type SubUser struct {
	ID              uint                      `gorm:"primaryKey" json:"id"`
	ParentUserEmail string                    `gorm:"size:191;index;not null" json:"parentUserEmail"`
	Email           string                    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	PasswordHash    string                    `gorm:"size:191;not null" json:"-"`
	FullName        string                    `gorm:"size:191" json:"fullName"`
	Role            string                    `gorm:"size:30;not null" json:"role"`
	Permissions     permissions.PermissionSet `gorm:"type:json;serializer:json" json:"permissions"`
	IsActive        bool                      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time                 `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time                 `gorm:"autoUpdateTime" json:"updatedAt"`
}

// HasPermission mirrors the gate logic for use outside the middleware:
// admins pass, inactive accounts fail, everything else is an exact cell
// lookup.
func (s *SubUser) HasPermission(resource permissions.Resource, action permissions.Action) bool {
	if !s.IsActive {
		return false
	}
	if s.Role == permissions.RoleAdmin {
		return true
	}
	return s.Permissions.Allows(resource, action)
}
