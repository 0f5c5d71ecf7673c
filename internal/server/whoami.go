package server

import (
	"net/http"

	"github.com/ambienthq/ambient/internal/tenantctx"
	"github.com/gin-gonic/gin"
)

type WhoamiResponse struct {
	Actor      *string `json:"actor"`
	TenantID   *string `json:"tenant_id"`
	TenantSlug *string `json:"tenant_slug"`
}

// Whoami returns actor and tenant context for the request. Actor resolution
// is a stub until authentication lands; tenant fields are null unless an
// upstream layer attached a resolved tenant to the request context.
func (s *Server) Whoami(c *gin.Context) {
	resp := WhoamiResponse{}
	if tc, ok := tenantctx.From(c.Request.Context()); ok {
		resp.TenantID = &tc.ID
		resp.TenantSlug = &tc.Slug
	}

	c.JSON(http.StatusOK, resp)
}
