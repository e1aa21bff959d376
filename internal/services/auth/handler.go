package auth

import (
	"net/http"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the account endpoints
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.RegisterRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	user, token, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.logger.Error("register_failed", "Registration failed", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.LoginRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	user, token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	user, err := h.service.GetUser(r.Context(), identity.UserID)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PATCH /auth/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	var req models.UpdateProfileRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), identity.UserID, &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, user)
}

// RequestReset handles POST /auth/password-reset/request. The response is identical
// whether or not the account exists.
func (h *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.ResetRequestRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), &req); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset message has been sent",
	})
}

// ConfirmReset handles POST /auth/password-reset/confirm
func (h *Handler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.ResetConfirmRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
