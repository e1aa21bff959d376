package report

import (
	"net/http"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/web"
)

// Handler exposes the reporting endpoints (admin only)
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new report handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Production handles GET /reports/production
func (h *Handler) Production(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestIDFromContext(r.Context())

	report, err := h.service.Production(r.Context())
	if err != nil {
		h.logger.Error("report_failed", "Failed to build production report", requestID, err, nil)
		web.RespondError(w, web.ErrorStatus(err), err.Error(), requestID)
		return
	}
	web.RespondJSON(w, http.StatusOK, report)
}
