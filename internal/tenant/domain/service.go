package domain

import (
	"context"
	"errors"
)

// Resolver resolves an opaque tenant identifier (a slug supplied out-of-band,
// e.g. via a request header) into a TenantContext. It performs no
// authentication or permission checks; the identifier is trusted at the
// transport boundary.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (*TenantContext, error)
}

// TenantContext exposes resolved tenant identity to downstream request
// handling.
type TenantContext struct {
	ID   string `json:"tenant_id"`
	Slug string `json:"tenant_slug"`
	Name string `json:"tenant_name"`
}

var (
	ErrTenantNotFound    = errors.New("tenant_not_found")
	ErrInvalidIdentifier = errors.New("invalid_tenant_identifier")
)
