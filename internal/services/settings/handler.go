package settings

import (
	"net/http"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the site configuration endpoints
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new settings handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Site handles GET /site (public)
func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	content, err := h.service.SiteContent(r.Context())
	if err != nil {
		h.logger.Error("site_content_failed", "Failed to load site content", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, content)
}

// PickupSlots handles GET /site/pickup-slots (public)
func (h *Handler) PickupSlots(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"slots": models.PickupSlots,
	})
}

// UpdateEventInfo handles PUT /site/event (admin)
func (h *Handler) UpdateEventInfo(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var info models.EventInfo
	if err := web.DecodeJSON(r, &info); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	if err := h.service.UpdateEventInfo(r.Context(), &info); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, info)
}

// UpdateLandingContent handles PUT /site/landing (admin)
func (h *Handler) UpdateLandingContent(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var content models.LandingContent
	if err := web.DecodeJSON(r, &content); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	if err := h.service.UpdateLandingContent(r.Context(), &content); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, content)
}

// UpdateAccessCode handles PUT /site/access-code (admin)
func (h *Handler) UpdateAccessCode(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var code models.AccessCode
	if err := web.DecodeJSON(r, &code); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	if err := h.service.UpdateAccessCode(r.Context(), &code); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"message": "access code updated"})
}
