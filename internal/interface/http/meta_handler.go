package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/response"
)

// MetaHandler serves the welcome endpoint and the token-gated probes.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler { return &MetaHandler{} }

// Welcome GET /api
func (h *MetaHandler) Welcome(c *gin.Context) {
	response.Message(c, http.StatusOK, "Welcome to the backend API!")
}

// MyPage GET /mypage (auth required)
func (h *MetaHandler) MyPage(c *gin.Context) {
	response.Message(c, http.StatusOK, "You now have access to My Page.")
}

// ValidateToken GET /validate-token (auth required)
// Echoes the decoded principal back to the caller.
func (h *MetaHandler) ValidateToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.Principal(c)})
}
