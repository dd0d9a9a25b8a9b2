package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/concily/reconciliation/internal/utils"
)

// GetReport fetches a persisted reconciliation report by id
func (h *ReconciliationHandler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid report id")
	}

	report, err := h.uc.GetReport(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", report)
}

// Explain generates and persists the templated explanation for a report
func (h *ReconciliationHandler) Explain(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid report id")
	}

	locale := c.QueryParam("lang")

	explanation, err := h.uc.Explain(c.Request().Context(), id, locale)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]string{
		"explanation": explanation,
	})
}

// TriggerDemo seeds demo transactions to exercise the pipeline end to end
func (h *ReconciliationHandler) TriggerDemo(c echo.Context) error {
	result, err := h.uc.SeedDemo(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Demo transactions seeded", result)
}
