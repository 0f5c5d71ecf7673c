// Package seed bootstraps development fixtures.
package seed

import (
	"errors"
	"time"

	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	demoTenantSlug   = "t_demo"
	demoTenantName   = "Demo Tenant"
	demoTenantDomain = "demo.example.com"
)

// EnsureDemoTenant idempotently creates the demo tenant used by local
// environments.
func EnsureDemoTenant(conn *gorm.DB, genID *snowflake.Node) error {
	var existing tenantdomain.Tenant
	err := conn.Where("slug = ?", demoTenantSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	return conn.Create(&tenantdomain.Tenant{
		ID:            genID.Generate(),
		Slug:          demoTenantSlug,
		Name:          demoTenantName,
		PrimaryDomain: demoTenantDomain,
		Metadata:      datatypes.JSONMap{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}
