package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/internal/utils"
)

// IngestProviderEvent handles the provider webhook. Payload authenticity is
// verified upstream of this service.
func (h *ReconciliationHandler) IngestProviderEvent(c echo.Context) error {
	var event models.ProviderEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, stored, err := h.uc.IngestProviderEvent(c.Request().Context(), &event)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !stored {
		return utils.SuccessResponse(c, http.StatusOK, "Event acknowledged", nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction recorded", tx)
}
