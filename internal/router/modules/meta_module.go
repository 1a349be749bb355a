package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/movie-review-api/internal/interface/http"
	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

// MetaModule wires the welcome endpoint and the token-gated probes.
type MetaModule struct {
	Handler *handlers.MetaHandler
	JWT     *helpers.JWTManager
}

func NewMetaModule(h *handlers.MetaHandler, jwt *helpers.JWTManager) *MetaModule {
	return &MetaModule{Handler: h, JWT: jwt}
}

func (m *MetaModule) Register(rg *gin.RouterGroup) {
	auth := middleware.BearerAuth(m.JWT)

	rg.GET("/api", m.Handler.Welcome)
	rg.GET("/mypage", auth, m.Handler.MyPage)
	rg.GET("/validate-token", auth, m.Handler.ValidateToken)
}
