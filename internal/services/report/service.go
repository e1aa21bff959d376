package report

import (
	"context"

	"github.com/Snoopy-too/fidels-pizza/internal/logger"
	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// OrderSource provides the full order ledger the report is derived from
type OrderSource interface {
	ListAll(ctx context.Context) ([]models.Order, error)
}

// Service derives kitchen production totals from the order ledger
type Service struct {
	orders OrderSource
	logger *logger.Logger
}

// NewService creates a new report service
func NewService(orders OrderSource, log *logger.Logger) *Service {
	return &Service{orders: orders, logger: log}
}

// Production recomputes the production report from the current ledger
func (s *Service) Production(ctx context.Context) (models.ProductionReport, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return models.ProductionReport{}, err
	}
	return models.BuildProductionReport(orders), nil
}
