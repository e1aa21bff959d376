package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Snoopy-too/fidels-pizza/internal/config"
	"github.com/Snoopy-too/fidels-pizza/internal/database"
	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/messaging"
	"github.com/Snoopy-too/fidels-pizza/internal/services/auth"
	"github.com/Snoopy-too/fidels-pizza/internal/services/cart"
	"github.com/Snoopy-too/fidels-pizza/internal/services/catalog"
	"github.com/Snoopy-too/fidels-pizza/internal/services/order"
	"github.com/Snoopy-too/fidels-pizza/internal/services/report"
	"github.com/Snoopy-too/fidels-pizza/internal/services/settings"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// app wires every service behind the HTTP surface
type app struct {
	logger *logger.Logger
	db     *database.DB
	broker *messaging.Connection
	tokens *auth.TokenManager

	authHandler     *auth.Handler
	catalogHandler  *catalog.Handler
	cartHandler     *cart.Handler
	orderHandler    *order.Handler
	reportHandler   *report.Handler
	settingsHandler *settings.Handler
}

func buildApp(ctx context.Context, cfg *config.Config, log *logger.Logger, db *database.DB, broker *messaging.Connection, publisher *messaging.Publisher) (*app, error) {
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.TokenTTLHoursOrDefault())*time.Hour)

	settingsService := settings.NewService(settings.NewRepository(db), log)
	catalogService := catalog.NewService(catalog.NewRepository(db), log)
	cartService := cart.NewService(cart.NewRepository(db), catalogService, log)
	authService := auth.NewService(auth.NewRepository(db), tokens, settingsService, publisher, log)
	orderService := order.NewService(order.NewRepository(db), cartService, catalogService, authService, publisher, log)
	reportService := report.NewService(orderService, log)

	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminName, cfg.Auth.AdminPassword); err != nil {
		return nil, err
	}

	return &app{
		logger:          log,
		db:              db,
		broker:          broker,
		tokens:          tokens,
		authHandler:     auth.NewHandler(authService, log),
		catalogHandler:  catalog.NewHandler(catalogService, log),
		cartHandler:     cart.NewHandler(cartService, log),
		orderHandler:    order.NewHandler(orderService, log),
		reportHandler:   report.NewHandler(reportService, log),
		settingsHandler: settings.NewHandler(settingsService, log),
	}, nil
}

// Routes builds the full HTTP surface
func (a *app) Routes() http.Handler {
	mux := http.NewServeMux()

	user := a.tokens.RequireUser
	admin := a.tokens.RequireAdmin

	// Public
	mux.HandleFunc("GET /health", a.health)
	mux.Handle("GET /metrics", web.MetricsHandler())
	mux.HandleFunc("GET /site", a.settingsHandler.Site)
	mux.HandleFunc("GET /site/pickup-slots", a.settingsHandler.PickupSlots)
	mux.HandleFunc("GET /menu", a.catalogHandler.List)
	mux.HandleFunc("GET /menu/{id}", a.catalogHandler.Get)

	// Accounts
	mux.HandleFunc("POST /auth/register", a.authHandler.Register)
	mux.HandleFunc("POST /auth/login", a.authHandler.Login)
	mux.HandleFunc("POST /auth/password-reset/request", a.authHandler.RequestReset)
	mux.HandleFunc("POST /auth/password-reset/confirm", a.authHandler.ConfirmReset)
	mux.HandleFunc("GET /auth/me", user(a.authHandler.Me))
	mux.HandleFunc("PATCH /auth/profile", user(a.authHandler.UpdateProfile))

	// Cart
	mux.HandleFunc("GET /cart", user(a.cartHandler.Get))
	mux.HandleFunc("POST /cart/items", user(a.cartHandler.AddItem))
	mux.HandleFunc("PATCH /cart/items/{id}", user(a.cartHandler.SetQuantity))
	mux.HandleFunc("DELETE /cart/items/{id}", user(a.cartHandler.RemoveItem))
	mux.HandleFunc("DELETE /cart", user(a.cartHandler.Clear))

	// Orders
	mux.HandleFunc("POST /orders", user(a.orderHandler.Place))
	mux.HandleFunc("GET /orders", user(a.orderHandler.List))
	mux.HandleFunc("GET /orders/{id}", user(a.orderHandler.Get))
	mux.HandleFunc("PUT /orders/{id}/items", user(a.orderHandler.UpdateItems))
	mux.HandleFunc("DELETE /orders/{id}", user(a.orderHandler.Cancel))
	mux.HandleFunc("PATCH /orders/bulk", admin(a.orderHandler.BulkAssignPickup))
	mux.HandleFunc("PATCH /orders/{id}", admin(a.orderHandler.UpdateFields))
	mux.HandleFunc("DELETE /orders", admin(a.orderHandler.ClearAll))

	// Staff
	mux.HandleFunc("POST /menu", admin(a.catalogHandler.Create))
	mux.HandleFunc("PUT /menu/{id}", admin(a.catalogHandler.Update))
	mux.HandleFunc("DELETE /menu/{id}", admin(a.catalogHandler.Delete))
	mux.HandleFunc("GET /reports/production", admin(a.reportHandler.Production))
	mux.HandleFunc("PUT /site/event", admin(a.settingsHandler.UpdateEventInfo))
	mux.HandleFunc("PUT /site/landing", admin(a.settingsHandler.UpdateLandingContent))
	mux.HandleFunc("PUT /site/access-code", admin(a.settingsHandler.UpdateAccessCode))

	return web.Recovery(a.logger, web.WithLogging(a.logger, mux))
}

// health checks database and broker connectivity
func (a *app) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		web.RespondError(w, http.StatusServiceUnavailable, "database unreachable", web.RequestIDFromContext(r.Context()))
		return
	}
	if a.broker.IsClosed() {
		web.RespondError(w, http.StatusServiceUnavailable, "message broker unreachable", web.RequestIDFromContext(r.Context()))
		return
	}
	web.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
