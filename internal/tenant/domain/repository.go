package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the persistence contract for tenants. FindBySlug and
// FindByPrimaryDomain return ErrTenantNotFound when no row matches; Create
// surfaces storage-level uniqueness violations unchanged so callers can
// run conflict-retry.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindBySlug(ctx context.Context, slug string) (*Tenant, error)
	FindByPrimaryDomain(ctx context.Context, domain string) (*Tenant, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, tenant *Tenant) error
}
