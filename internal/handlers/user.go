package handlers

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserHandler — вход/выход и администрирование пользователей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
	Validate    *validator.Validate
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config, validate *validator.Validate) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg, Validate: validate}
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Post    string `json:"post"`
	IsAdmin bool   `json:"is_admin"`
}

// Login проверяет учётные данные и ставит cookie авторизации.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		h.Logger.Warnw("Login: rejected", "name", req.Name)
		writeServiceError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Name: user.Name, Post: user.Post, IsAdmin: user.IsAdmin})
}

// Logout сбрасывает cookie авторизации.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Post     string `json:"post"`
	Password string `json:"password" validate:"required,min=4"`
}

// CreateUser создаёт пользователя. Право есть только у администраторов,
// проверка — в сервисе.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), actorID, req.Name, req.Post, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userDTO{ID: user.ID, Name: user.Name, Post: user.Post, IsAdmin: user.IsAdmin})
}
