package tenantctx

import (
	"context"

	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
)

type contextKey struct{}

// With returns a context carrying the resolved tenant. The value is threaded
// explicitly through the call chain and never mutated after being set.
func With(ctx context.Context, tc tenantdomain.TenantContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// From returns the resolved tenant from the context, if any.
func From(ctx context.Context) (tenantdomain.TenantContext, bool) {
	if ctx == nil {
		return tenantdomain.TenantContext{}, false
	}
	tc, ok := ctx.Value(contextKey{}).(tenantdomain.TenantContext)
	return tc, ok
}
