package server

import (
	"net/http"

	signupdomain "github.com/ambienthq/ambient/internal/signup/domain"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles self-serve signup. The response is identical for new and
// already-registered users; only malformed input and public-domain policy
// rejections are distinguishable from success.
func (s *Server) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.signupsvc.Signup(c.Request.Context(), signupdomain.Request{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
