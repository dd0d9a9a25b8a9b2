package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/services/reconciliation"
)

// ReconciliationHandler handles HTTP requests for the reconciliation service
type ReconciliationHandler struct {
	cfg *models.Config
	uc  reconciliation.ReconciliationUseCase
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(cfg *models.Config, uc reconciliation.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{
		cfg: cfg,
		uc:  uc,
	}
}

// RegisterRoutes registers the reconciliation routes
func (h *ReconciliationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.POST("/webhooks/provider", h.IngestProviderEvent)
	g.POST("/reconcile", h.Reconcile)
	g.GET("/reports/:id", h.GetReport)
	g.POST("/reports/:id/explain", h.Explain)
	g.POST("/demo/trigger", h.TriggerDemo)
}
