package order

import (
	"net/http"
	"strconv"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the order endpoints. All routes require authentication;
// the bulk, patch and clear routes additionally require the admin role.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Place handles POST /orders
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	order, err := h.service.Place(r.Context(), identity)
	if err != nil {
		h.logger.Error("order_place_failed", "Failed to place order", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusCreated, order)
}

// List handles GET /orders
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	orders, err := h.service.List(r.Context(), identity)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, orders)
}

// Get handles GET /orders/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	orderID, ok := h.orderID(w, r, requestID)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), orderID, identity)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, order)
}

// UpdateItems handles PUT /orders/{id}/items
func (h *Handler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	orderID, ok := h.orderID(w, r, requestID)
	if !ok {
		return
	}

	var req models.UpdateItemsRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	order, err := h.service.UpdateItems(r.Context(), orderID, identity, &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, order)
}

// UpdateFields handles PATCH /orders/{id} (admin)
func (h *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	orderID, ok := h.orderID(w, r, requestID)
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	order, err := h.service.UpdateFields(r.Context(), orderID, &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, order)
}

// Cancel handles DELETE /orders/{id}
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	orderID, ok := h.orderID(w, r, requestID)
	if !ok {
		return
	}

	order, err := h.service.Cancel(r.Context(), orderID, identity)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, order)
}

// BulkAssignPickup handles PATCH /orders/bulk (admin)
func (h *Handler) BulkAssignPickup(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	var req models.BulkAssignRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	updated, err := h.service.BulkAssignPickup(r.Context(), &req)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"updated":     updated,
		"pickup_time": req.PickupTime,
	})
}

// ClearAll handles DELETE /orders (admin). Requires ?confirm=all-orders.
func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	if err := h.service.ClearAll(r.Context(), r.URL.Query().Get("confirm")); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"message": "all orders deleted"})
}

func (h *Handler) orderID(w http.ResponseWriter, r *http.Request, requestID string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid order id", requestID)
		return 0, false
	}
	return id, true
}
