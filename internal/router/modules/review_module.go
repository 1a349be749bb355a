package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/movie-review-api/internal/interface/http"
	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

// ReviewModule wires the review endpoints.
// Public: GET /reviews, GET /reviews/:id, GET /reviews/movie/:movieId
// Protected: POST /reviews, PUT /reviews/:id, DELETE /reviews/:id
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.JWTManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.JWTManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	auth := middleware.BearerAuth(m.JWT)

	rg.GET("/reviews", m.Handler.List)
	rg.GET("/reviews/:id", m.Handler.GetByID)
	rg.GET("/reviews/movie/:movieId", m.Handler.ListByMovie)

	rg.POST("/reviews", auth, m.Handler.Create)
	rg.PUT("/reviews/:id", auth, m.Handler.Update)
	rg.DELETE("/reviews/:id", auth, m.Handler.Delete)
}
