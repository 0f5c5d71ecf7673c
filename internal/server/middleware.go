package server

import (
	"errors"

	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/ambienthq/ambient/internal/tenantctx"
	"github.com/gin-gonic/gin"
)

// TenantHeader carries the caller's tenant slug. The value is an identity
// claim trusted at the transport boundary; no permission check happens here.
const TenantHeader = "X-Tenant-ID"

// tenantSkipPaths are exempt from tenant identification (auth endpoints and
// their health/identity probes).
// TODO: add /v1/auth/login, /v1/auth/verify, /v1/auth/resend when implemented.
var tenantSkipPaths = map[string]struct{}{
	"/v1/auth/signup": {},
	"/v1/auth/health": {},
	"/v1/auth/whoami": {},
}

// tenantRequiredPaths must carry X-Tenant-ID and fail fast without it.
var tenantRequiredPaths = map[string]struct{}{
	"/internal/tenant": {},
}

// TenantEnforcement is a static allow-list evaluated before any handler. On
// required paths a missing header is a client error and an unresolvable slug
// is not found; when resolution succeeds the tenant context is threaded
// through the request context as an explicit value.
func (s *Server) TenantEnforcement() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, ok := tenantSkipPaths[path]; ok {
			c.Next()
			return
		}

		_, required := tenantRequiredPaths[path]
		identifier := c.GetHeader(TenantHeader)

		if identifier == "" {
			if required {
				AbortWithError(c, ErrTenantHeaderRequired)
				return
			}
			c.Next()
			return
		}

		tc, err := s.resolver.Resolve(c.Request.Context(), identifier)
		if err != nil {
			if required {
				AbortWithError(c, err)
				return
			}
			// Unverifiable claim on a path that does not require one is
			// ignored rather than rejected.
			if !errors.Is(err, tenantdomain.ErrTenantNotFound) && !errors.Is(err, tenantdomain.ErrInvalidIdentifier) {
				AbortWithError(c, err)
				return
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(tenantctx.With(c.Request.Context(), *tc))
		c.Next()
	}
}
