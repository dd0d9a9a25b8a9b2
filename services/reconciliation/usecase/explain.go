package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/pkg/errors"
)

// Supported explanation locales
const (
	LocaleSpanish = "es"
	LocaleEnglish = "en"
)

const explanationIDLimit = 3

// Explain generates the templated explanation for a report and persists it
// onto the report. The text is a pure function of the report's statistics and
// the locale: no inference, no hidden state, byte-identical on repeat calls.
func (uc *ReconciliationUC) Explain(ctx context.Context, id uuid.UUID, locale string) (string, error) {
	if locale == "" {
		locale = uc.cfg.Reconcile.DefaultLocale
	}
	if locale != LocaleSpanish && locale != LocaleEnglish {
		return "", errors.Validationf("unsupported locale %q", locale)
	}

	report, err := uc.reportRepo.GetReport(ctx, id)
	if err != nil {
		return "", err
	}

	explanation := buildExplanation(report, locale)

	if err := uc.reportRepo.UpdateExplanation(ctx, id, explanation); err != nil {
		return "", err
	}

	return explanation, nil
}

func buildExplanation(report *models.Report, locale string) string {
	if locale == LocaleEnglish {
		if report.Mismatches == 0 {
			return fmt.Sprintf("Today the system processed %d transactions with 100%% precision. "+
				"All provider records match our local system perfectly. No manual action is required.",
				report.TotalTransactions)
		}
		return fmt.Sprintf(`%d discrepancies were detected in today's processing out of a total of %d transactions.

Possible causes identified:
1. Delayed settlement: some transactions may be marked as "succeeded" by the provider but pending registration in the ERP.
2. Timing issues: transactions made near midnight might fall into different reporting periods.
3. Webhook latency: a delay in receiving the provider event prevented time-bound local registration.

Suggested actions:
- Manually review IDs: %s.
- Manually sync the last 5 minutes of provider transactions.`,
			report.Mismatches, report.TotalTransactions, leadingMismatchIDs(report))
	}

	if report.Mismatches == 0 {
		return fmt.Sprintf("Hoy el sistema procesó %d transacciones con una precisión del 100%%. "+
			"Todos los registros del proveedor coinciden perfectamente con nuestro sistema local. "+
			"No se requiere ninguna acción manual.",
			report.TotalTransactions)
	}
	return fmt.Sprintf(`Se detectaron %d discrepancias en el procesamiento de hoy de un total de %d transacciones.

Posibles causas identificadas:
1. Liquidaciones demoradas: algunas transacciones pueden estar marcadas como "succeeded" por el proveedor pero pendientes de registro en el ERP.
2. Problemas de timing: transacciones realizadas cerca de la medianoche pueden caer en diferentes periodos de reporte.
3. Latencia del webhook: un retraso en la recepción del evento del proveedor impidió el registro local a tiempo.

Acciones sugeridas:
- Revisar manualmente los IDs: %s.
- Sincronizar manualmente los últimos 5 minutos de transacciones del proveedor.`,
		report.Mismatches, report.TotalTransactions, leadingMismatchIDs(report))
}

func leadingMismatchIDs(report *models.Report) string {
	ids := report.Summary.MismatchedIDs
	if len(ids) > explanationIDLimit {
		ids = ids[:explanationIDLimit]
	}
	return strings.Join(ids, ", ")
}
