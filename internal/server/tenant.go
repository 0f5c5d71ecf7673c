package server

import (
	"net/http"

	"github.com/ambienthq/ambient/internal/tenantctx"
	"github.com/gin-gonic/gin"
)

// ResolveTenant echoes the tenant identity resolved by the enforcement
// middleware from the X-Tenant-ID header.
func (s *Server) ResolveTenant(c *gin.Context) {
	tc, ok := tenantctx.From(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, tc)
}
