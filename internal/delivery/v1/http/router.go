package http

import (
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(embUC usecase.EmbedderUC) {
	healthHandler := NewHealthHandler(embUC, r.logger)

	r.router.Get("/healthz", healthHandler.liveness)
	r.router.Get("/readyz", healthHandler.readiness)
}
