package catalog

import (
	"net/http"
	"strconv"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the menu endpoints
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// List handles GET /menu
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, items)
}

// Get handles GET /menu/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid menu item id", requestID)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, item)
}

// Create handles POST /menu (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.MenuItemRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /menu/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid menu item id", requestID)
		return
	}

	var req models.MenuItemRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	item, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /menu/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid menu item id", requestID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"message": "menu item deleted"})
}
