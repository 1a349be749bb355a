package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/movie-review-api/config"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	pgPool     *pgxpool.Pool
	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }
