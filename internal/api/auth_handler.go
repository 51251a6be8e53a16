package api

import (
	"net/http"

	"streamhub/internal/domain"
	"streamhub/internal/schema"
	"streamhub/pkg/logger"
	"streamhub/pkg/validation"
)

type AuthHandler struct {
	service   domain.AuthService
	validate  *validation.Validator
	responder *Responder
	logger    logger.Logger
}

func NewAuthHandler(service domain.AuthService, validate *validation.Validator, responder *Responder, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validate:  validate,
		responder: responder,
		logger:    logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req schema.RegisterRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	user, err := h.service.Register(req.Username, req.Email, req.FullName, req.Password)
	if err != nil {
		h.logger.Error("Kullanıcı kaydı başarısız", map[string]interface{}{"username": req.Username, "error": err.Error()})
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "User registered successfully", schema.NewUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req schema.LoginRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	user, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	tokens, err := h.service.IssueTokens(user)
	if err != nil {
		h.logger.Error("Token çifti oluşturulamadı", map[string]interface{}{"id": user.ID, "error": err.Error()})
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Login successful", tokens)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := r.URL.Query().Get("refresh_token")
	if refreshToken == "" {
		h.responder.Error(w, domain.Validation("refresh_token is required"))
		return
	}

	tokens, err := h.service.Refresh(refreshToken)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		h.responder.Error(w, domain.Unauthorized("Not authenticated"))
		return
	}

	h.responder.Success(w, http.StatusOK, "Success", schema.NewUserResponse(user))
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Refresh)
	mux.Handle("GET /api/v1/auth/me", requireAuth(http.HandlerFunc(h.Me)))
}
