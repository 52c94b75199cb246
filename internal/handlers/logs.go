package handlers

import (
	"StockKeeper/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// LogHandler — просмотр журнала действий.
type LogHandler struct {
	Logs   *service.LogService
	Logger *zap.SugaredLogger
}

func NewLogHandler(logs *service.LogService, logger *zap.SugaredLogger) *LogHandler {
	return &LogHandler{Logs: logs, Logger: logger}
}

// List отдаёт журнал, новые записи первыми.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	logs, err := h.Logs.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Logs: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
