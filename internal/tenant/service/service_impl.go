package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ambienthq/ambient/internal/tenant/domain"
	"go.uber.org/zap"
)

type resolver struct {
	log  *zap.Logger
	repo domain.Repository
}

func NewResolver(log *zap.Logger, repo domain.Repository) domain.Resolver {
	return &resolver{log: log, repo: repo}
}

// Resolve looks a tenant up by slug. Unknown slugs map to ErrTenantNotFound;
// storage failures are logged and propagated for opaque handling upstream,
// never conflated with not-found.
func (r *resolver) Resolve(ctx context.Context, identifier string) (*domain.TenantContext, error) {
	slug := strings.ToLower(strings.TrimSpace(identifier))
	if slug == "" {
		return nil, domain.ErrInvalidIdentifier
	}

	tenant, err := r.repo.FindBySlug(ctx, slug)
	if errors.Is(err, domain.ErrTenantNotFound) {
		return nil, domain.ErrTenantNotFound
	}
	if err != nil {
		r.log.Error("tenant lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	return &domain.TenantContext{
		ID:   tenant.ID.String(),
		Slug: tenant.Slug,
		Name: tenant.Name,
	}, nil
}
