package usecase

import (
	"github.com/concily/reconciliation/internal/pkg/logger"
	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/services/reconciliation"
)

// ReconciliationUC implements the reconciliation.ReconciliationUseCase
// interface.
type ReconciliationUC struct {
	cfg             *models.Config
	transactionRepo reconciliation.TransactionRepo
	reportRepo      reconciliation.ReportRepo
	gw              reconciliation.ReconciliationGW
	log             *logger.AppLogger
}

// NewReconciliationUC creates a new reconciliation use case
func NewReconciliationUC(
	cfg *models.Config,
	transactionRepo reconciliation.TransactionRepo,
	reportRepo reconciliation.ReportRepo,
	gw reconciliation.ReconciliationGW,
	log *logger.AppLogger,
) reconciliation.ReconciliationUseCase {
	return &ReconciliationUC{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		reportRepo:      reportRepo,
		gw:              gw,
		log:             log,
	}
}
