package handlers

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/export"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	catalogService *service.CatalogService,
	inventoryService *service.InventoryService,
	reportService *service.ReportService,
	logService *service.LogService,
	exporter *export.Exporter,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	validate := validator.New()

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg, validate)
	itemHandler := NewItemHandler(catalogService, logger, validate)
	categoryHandler := NewCategoryHandler(catalogService, logger, validate)
	inventoryHandler := NewInventoryHandler(inventoryService, logger, validate)
	reportHandler := NewReportHandler(reportService, exporter, logger)
	logHandler := NewLogHandler(logService, logger)

	// User routes
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Post("/api/admin/users", userHandler.CreateUser)

	// Catalog routes
	r.Get("/api/items", itemHandler.List)
	r.Post("/api/items", itemHandler.Create)
	r.Get("/api/items/{id}", itemHandler.Get)
	r.Put("/api/items/{id}", itemHandler.Update)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	r.Get("/api/categories", categoryHandler.List)
	r.Post("/api/categories", categoryHandler.Create)
	r.Put("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)

	// Inventory routes
	r.Post("/api/inventory/start", inventoryHandler.Start)
	r.Get("/api/inventory", inventoryHandler.List)
	r.Get("/api/inventory/{id}", inventoryHandler.Get)
	r.Post("/api/inventory/lines/{id}/count", inventoryHandler.RecordCount)

	// Reports and audit log
	r.Get("/api/report", reportHandler.Get)
	r.Get("/api/report/export", reportHandler.Export)
	r.Get("/api/logs", logHandler.List)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrNameTaken):
		http.Error(w, "name already taken", http.StatusConflict)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parseID читает числовой URL-параметр.
func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// requireUser достаёт id пользователя из контекста; без него — 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
