package handlers

import (
	"StockKeeper/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// InventoryHandler — сеансы инвентаризации.
type InventoryHandler struct {
	Inventory *service.InventoryService
	Logger    *zap.SugaredLogger
	Validate  *validator.Validate
}

func NewInventoryHandler(inventory *service.InventoryService, logger *zap.SugaredLogger, validate *validator.Validate) *InventoryHandler {
	return &InventoryHandler{Inventory: inventory, Logger: logger, Validate: validate}
}

// Start снимает текущие остатки в новый сеанс.
func (h *InventoryHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	inv, err := h.Inventory.StartSession(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("StartSession: service error", "user_id", userID, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	invs, err := h.Inventory.ListSessions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.Inventory.GetSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

type recordCountRequest struct {
	ActualQty *int64 `json:"actual_qty" validate:"required,gte=0"`
}

// RecordCount вносит фактическое количество по строке сеанса.
func (h *InventoryHandler) RecordCount(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	lineID, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recordCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	line, err := h.Inventory.RecordCount(r.Context(), lineID, *req.ActualQty)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}
