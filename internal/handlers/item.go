package handlers

import (
	"StockKeeper/internal/repo"
	"StockKeeper/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemHandler — CRUD товаров каталога.
type ItemHandler struct {
	Catalog  *service.CatalogService
	Logger   *zap.SugaredLogger
	Validate *validator.Validate
}

func NewItemHandler(catalog *service.CatalogService, logger *zap.SugaredLogger, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{Catalog: catalog, Logger: logger, Validate: validate}
}

type itemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"gte=0"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"category_id"`
}

func (h *ItemHandler) input(req itemRequest) service.ItemInput {
	return service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
}

// List отдаёт каталог с фильтрами ?search= и ?category_id=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	f := repo.ItemFilter{Search: r.URL.Query().Get("search")}
	// нечисловое значение фильтра молча игнорируется, как в исходной системе
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.CategoryID = &id
		}
	}

	items, err := h.Catalog.ListItems(r.Context(), f)
	if err != nil {
		h.Logger.Errorw("ListItems: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	it, err := h.Catalog.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil || req.Price.IsNegative() {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.Catalog.CreateItem(r.Context(), userID, h.input(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil || req.Price.IsNegative() {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	it, err := h.Catalog.UpdateItem(r.Context(), userID, id, h.input(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.DeleteItem(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
