package cart

import (
	"net/http"
	"strconv"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the cart endpoints. All routes require authentication.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new cart handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

type addItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Lines []models.CartLine `json:"lines"`
	Total int64             `json:"total"`
}

func respondCart(w http.ResponseWriter, cart *models.Cart) {
	web.RespondJSON(w, http.StatusOK, cartResponse{Lines: cart.Lines, Total: cart.Total()})
}

// Get handles GET /cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	cart, err := h.service.Get(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("cart_get_failed", "Failed to load cart", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	respondCart(w, cart)
}

// AddItem handles POST /cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	var req addItemRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}
	if req.MenuItemID <= 0 {
		web.RespondError(w, http.StatusBadRequest, "menu_item_id is required", requestID)
		return
	}

	cart, err := h.service.AddItem(r.Context(), identity.UserID, req.MenuItemID, req.Quantity)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	respondCart(w, cart)
}

// SetQuantity handles PATCH /cart/items/{id}
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	menuItemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid menu item id", requestID)
		return
	}

	var req setQuantityRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request body", requestID)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), identity.UserID, menuItemID, req.Quantity)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	respondCart(w, cart)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	menuItemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid menu item id", requestID)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), identity.UserID, menuItemID)
	if err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	respondCart(w, cart)
}

// Clear handles DELETE /cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())
	identity, _ := web.IdentityFromContext(r.Context())

	if err := h.service.Clear(r.Context(), identity.UserID); err != nil {
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
