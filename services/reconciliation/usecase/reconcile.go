package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/concily/reconciliation/internal/pkg/models"
	"github.com/concily/reconciliation/pkg/errors"
)

// Reconcile matches the provider feed against the local feed for the given
// half-open window and persists the resulting report. The provider side is
// ground truth for expected transactions. Concurrent invocations are not
// coordinated; each produces an independent audit report.
func (uc *ReconciliationUC) Reconcile(ctx context.Context, window models.TimeWindow) (*models.Report, error) {
	if err := window.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.KindValidation, "invalid reconciliation window")
	}

	txs, err := uc.transactionRepo.GetTransactionsInWindow(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	providerSet, localSet := partition(txs)

	var summary models.ReportSummary
	if uc.cfg.Reconcile.StrictMatching {
		summary = matchStrict(providerSet, localSet)
	} else {
		summary = matchLoose(providerSet, localSet)
	}

	report := &models.Report{
		WindowStart:       window.Start,
		WindowEnd:         window.End,
		TotalTransactions: len(providerSet),
		Mismatches:        len(providerSet) - summary.MatchedCount,
		Summary:           summary,
	}

	if err := uc.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"report_id":  report.ID,
		"total":      report.TotalTransactions,
		"mismatches": report.Mismatches,
	}).Info("reconciliation completed")

	uc.publishCompleted(ctx, report)

	return report, nil
}

// partition splits the fetched set by source, excluding unsuccessful
// transactions from matching entirely.
func partition(txs []*models.Transaction) (providerSet, localSet []*models.Transaction) {
	for _, tx := range txs {
		if !tx.IsSucceeded() {
			continue
		}
		switch tx.Source {
		case models.SourceProvider:
			providerSet = append(providerSet, tx)
		case models.SourceLocal:
			localSet = append(localSet, tx)
		}
	}
	return providerSet, localSet
}

// matchLoose implements the reference matching behavior: per provider
// transaction, a strong match on an explicit link wins over a weak match on
// equal amount, and local records are not consumed, so one local record may
// satisfy several provider records. Local-only surplus is not reported.
func matchLoose(providerSet, localSet []*models.Transaction) models.ReportSummary {
	summary := emptySummary()

	for _, p := range providerSet {
		if findStrongMatch(localSet, p.ExternalID, nil) >= 0 || findAmountMatch(localSet, p.Amount, nil) >= 0 {
			summary.MatchedCount++
			continue
		}
		addMismatch(&summary, p, providerMismatchDetail(p))
	}

	return summary
}

// matchStrict pairs records one-to-one: a matched local record is consumed
// and cannot satisfy another provider record, and unmatched local records are
// reported as a second mismatch category after the provider-side mismatches.
// Strong links are resolved for the whole set before any amount matching, so
// an amount match cannot consume a record that another provider transaction
// links to.
func matchStrict(providerSet, localSet []*models.Transaction) models.ReportSummary {
	summary := emptySummary()
	consumed := make([]bool, len(localSet))
	matched := make([]bool, len(providerSet))

	for pi, p := range providerSet {
		if idx := findStrongMatch(localSet, p.ExternalID, consumed); idx >= 0 {
			consumed[idx] = true
			matched[pi] = true
			summary.MatchedCount++
		}
	}

	for pi, p := range providerSet {
		if matched[pi] {
			continue
		}
		if idx := findAmountMatch(localSet, p.Amount, consumed); idx >= 0 {
			consumed[idx] = true
			summary.MatchedCount++
			continue
		}
		addMismatch(&summary, p, providerMismatchDetail(p))
	}

	for i, l := range localSet {
		if !consumed[i] {
			addMismatch(&summary, l, localSurplusDetail(l))
		}
	}

	return summary
}

// findStrongMatch returns the index of the first local record whose link
// references the provider external id, skipping consumed entries when a
// consumption mask is supplied, or -1.
func findStrongMatch(localSet []*models.Transaction, externalID string, consumed []bool) int {
	for i, l := range localSet {
		if consumed != nil && consumed[i] {
			continue
		}
		if l.Link() == externalID {
			return i
		}
	}
	return -1
}

// findAmountMatch returns the index of the first local record with an equal
// amount, skipping consumed entries when a consumption mask is supplied.
// Currency and timing are deliberately not compared; see the report template
// causes for the known precision gap.
func findAmountMatch(localSet []*models.Transaction, amount int64, consumed []bool) int {
	for i, l := range localSet {
		if consumed != nil && consumed[i] {
			continue
		}
		if l.Amount == amount {
			return i
		}
	}
	return -1
}

func emptySummary() models.ReportSummary {
	return models.ReportSummary{
		MismatchedIDs:     []string{},
		MismatchedDetails: []string{},
	}
}

func addMismatch(summary *models.ReportSummary, tx *models.Transaction, detail string) {
	summary.MismatchedIDs = append(summary.MismatchedIDs, tx.ExternalID)
	summary.MismatchedDetails = append(summary.MismatchedDetails, detail)
}

func providerMismatchDetail(tx *models.Transaction) string {
	return fmt.Sprintf("Missing local record for provider transaction %s (%d %s)",
		tx.ExternalID, tx.Amount, tx.Currency)
}

func localSurplusDetail(tx *models.Transaction) string {
	return fmt.Sprintf("No provider record for local transaction %s (%d %s)",
		tx.ExternalID, tx.Amount, tx.Currency)
}

func (uc *ReconciliationUC) publishCompleted(ctx context.Context, report *models.Report) {
	if uc.gw == nil {
		return
	}

	event := models.ReconciliationCompletedEvent{
		ReportID:          report.ID,
		WindowStart:       report.WindowStart,
		WindowEnd:         report.WindowEnd,
		TotalTransactions: report.TotalTransactions,
		Mismatches:        report.Mismatches,
		Timestamp:         time.Now().UTC(),
	}

	// The report is already durable; a publish failure is logged, not surfaced.
	if err := uc.gw.PublishReconciliationCompleted(ctx, event); err != nil {
		uc.log.WithField("report_id", report.ID).WithError(err).Error("failed to publish reconciliation event")
	}
}

// GetReport fetches a persisted report by id
func (uc *ReconciliationUC) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	return uc.reportRepo.GetReport(ctx, id)
}
