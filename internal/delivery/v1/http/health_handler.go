package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
)

// HealthHandler обслуживает liveness и readiness пробы.
type HealthHandler struct {
	embUC  usecase.EmbedderUC
	logger logger.Logger
}

func NewHealthHandler(embUC usecase.EmbedderUC, logger logger.Logger) *HealthHandler {
	return &HealthHandler{embUC: embUC, logger: logger}
}

// liveness отвечает 200, пока процесс жив. Готовность модели здесь не
// проверяется, иначе оркестратор перезапустит сервис во время загрузки.
func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readiness отвечает 200 только после загрузки модели.
func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	res, err := h.embUC.HealthCheck(r.Context())
	if err != nil || !res.ModelLoaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("model is not loaded"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":       res.Status,
		"model_loaded": res.ModelLoaded,
		"timestamp":    res.Timestamp,
	}); err != nil {
		h.logger.Warnf("failed to encode readiness response: %v", err)
	}
}
