package service

import (
	"github.com/avkhamov/userhub/internal/config"
	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
