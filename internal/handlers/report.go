package handlers

import (
	"StockKeeper/internal/export"
	"StockKeeper/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// ReportHandler — отчёт по каталогу и его выгрузка в xlsx.
type ReportHandler struct {
	Reports  *service.ReportService
	Exporter *export.Exporter
	Logger   *zap.SugaredLogger
}

func NewReportHandler(reports *service.ReportService, exporter *export.Exporter, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{Reports: reports, Exporter: exporter, Logger: logger}
}

// Get отдаёт отчёт по живому каталогу.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	rep, err := h.Reports.Generate(r.Context())
	if err != nil {
		h.Logger.Errorw("Report: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// Export отдаёт тот же отчёт xlsx-вложением. Сериализация выполняется
// воркером экспортёра, путь обработки запросов не занят.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	rep, err := h.Reports.Generate(r.Context())
	if err != nil {
		h.Logger.Errorw("Export: report error", "error", err)
		writeServiceError(w, err)
		return
	}

	data, err := h.Exporter.Render(r.Context(), rep)
	if err != nil {
		h.Logger.Errorw("Export: render error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
