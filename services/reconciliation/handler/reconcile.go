package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/internal/utils"
)

// reconcileRequest optionally narrows the reconciliation window. When absent,
// the default daily window applies: local midnight up to now.
type reconcileRequest struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Reconcile triggers one reconciliation run and returns the created report
func (h *ReconciliationHandler) Reconcile(c echo.Context) error {
	var req reconcileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	window := models.DailyWindow(time.Now())
	if req.Start != nil {
		window.Start = *req.Start
	}
	if req.End != nil {
		window.End = *req.End
	}

	report, err := h.uc.Reconcile(c.Request().Context(), window)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reconciliation completed", report)
}
