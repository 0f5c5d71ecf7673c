// Package domain contains core types for the tenant service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Tenant is the isolation unit for multi-tenancy. Rows are created by signup
// (or seeding) and never mutated afterwards.
type Tenant struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	Slug          string            `gorm:"type:text;not null;uniqueIndex:ux_tenants_slug" json:"slug"`
	Name          string            `gorm:"type:text;not null" json:"name"`
	PrimaryDomain string            `gorm:"column:primary_domain;type:text;not null;uniqueIndex:ux_tenants_primary_domain" json:"primary_domain"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Tenant) TableName() string { return "tenants" }
