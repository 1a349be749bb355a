package router

import (
	"github.com/oksasatya/movie-review-api/internal/application"
	"github.com/oksasatya/movie-review-api/internal/container"
	pginfra "github.com/oksasatya/movie-review-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/movie-review-api/internal/interface/http"
	"github.com/oksasatya/movie-review-api/internal/router/modules"
)

// InitModules builds the feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	reviews := pginfra.NewReviewRepository(pool)

	accounts := application.NewAccountService(users, reviews, jwt, logger)
	reviewSvc := application.NewReviewService(reviews, logger)

	r.Add(modules.NewMetaModule(handlers.NewMetaHandler(), jwt))
	r.Add(modules.NewAccountModule(handlers.NewAuthHandler(accounts, logger), jwt))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, logger), jwt))
}
