package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/authority-backend/internal/adapter/postgres"
	authorityrepo "github.com/heartmarshall/authority-backend/internal/adapter/postgres/authority"
	mergerepo "github.com/heartmarshall/authority-backend/internal/adapter/postgres/merge"
	referencerepo "github.com/heartmarshall/authority-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/authority-backend/internal/auth"
	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
)

// Services holds the wired application services shared by the server and
// the admin commands.
type Services struct {
	Authority *authority.Service
	Tokens    *auth.JWTManager
}

// NewServices wires repositories and services on top of pool.
func NewServices(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool) *Services {
	authorities := authorityrepo.New(pool)
	refs := referencerepo.New(pool)
	merges := mergerepo.New(pool)
	txm := postgres.NewTxManager(pool)

	return &Services{
		Authority: authority.NewService(logger, authorities, refs, merges, txm, cfg.Authority),
		Tokens:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}
