// Package domain contains core types for the user service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is a tenant-scoped account. Email is stored normalized (trimmed,
// lowercased) and is unique within the owning tenant, not globally.
type User struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID        snowflake.ID `gorm:"column:tenant_id;not null;index;uniqueIndex:ux_users_tenant_email,priority:1" json:"tenant_id"`
	Email           string       `gorm:"type:text;not null;uniqueIndex:ux_users_tenant_email,priority:2" json:"email"`
	PasswordHash    string       `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsActive        bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsEmailVerified bool         `gorm:"column:is_email_verified;not null;default:false" json:"is_email_verified"`
	LastLoginAt     *time.Time   `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
