package service

import (
	"context"
	"testing"

	"github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/ambienthq/ambient/internal/tenant/repository"
	"github.com/ambienthq/ambient/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver(t *testing.T) (domain.Resolver, domain.Repository) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Tenant{}))

	repo := repository.NewRepository(conn)
	return NewResolver(zap.NewNop(), repo), repo
}

func TestResolveKnownSlug(t *testing.T) {
	resolver, repo := newTestResolver(t)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	tenant := &domain.Tenant{
		ID:            node.Generate(),
		Slug:          "t_acme_com",
		Name:          "acme.com",
		PrimaryDomain: "acme.com",
	}
	require.NoError(t, repo.Create(context.Background(), tenant))

	tc, err := resolver.Resolve(context.Background(), "t_acme_com")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID.String(), tc.ID)
	assert.Equal(t, "t_acme_com", tc.Slug)
	assert.Equal(t, "acme.com", tc.Name)
}

func TestResolveUnknownSlugIsNotFound(t *testing.T) {
	resolver, _ := newTestResolver(t)

	_, err := resolver.Resolve(context.Background(), "nonexistent-slug")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestResolveEmptyIdentifier(t *testing.T) {
	resolver, _ := newTestResolver(t)

	_, err := resolver.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}
