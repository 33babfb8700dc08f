package http

import (
	"github.com/avkhamov/userhub/internal/config"
	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
