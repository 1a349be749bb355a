package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/movie-review-api/internal/interface/http"
	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

// AccountModule wires the account endpoints.
// Public: POST /register, POST /login
// Protected: DELETE /delete/:username
type AccountModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.DELETE("/delete/:username", middleware.BearerAuth(m.JWT), m.Handler.DeleteAccount)
}
