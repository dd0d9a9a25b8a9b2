package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concily/reconciliation/internal/pkg/logger"
	"github.com/concily/reconciliation/internal/pkg/models"
	apperrors "github.com/concily/reconciliation/pkg/errors"
	"github.com/concily/reconciliation/services/reconciliation/mocks"
)

func testLogger(t *testing.T) *logger.AppLogger {
	t.Helper()
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return log
}

func testConfig(strict bool) *models.Config {
	cfg := &models.Config{}
	cfg.Reconcile.StrictMatching = strict
	cfg.Reconcile.DefaultLocale = "es"
	return cfg
}

type testDeps struct {
	transactionRepo *mocks.MockTransactionRepo
	reportRepo      *mocks.MockReportRepo
	gw              *mocks.MockReconciliationGW
}

func newTestUC(t *testing.T, ctrl *gomock.Controller, strict bool) (*ReconciliationUC, *testDeps) {
	t.Helper()
	deps := &testDeps{
		transactionRepo: mocks.NewMockTransactionRepo(ctrl),
		reportRepo:      mocks.NewMockReportRepo(ctrl),
		gw:              mocks.NewMockReconciliationGW(ctrl),
	}
	uc := NewReconciliationUC(testConfig(strict), deps.transactionRepo, deps.reportRepo, deps.gw, testLogger(t)).(*ReconciliationUC)
	return uc, deps
}

func testWindow() models.TimeWindow {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return models.TimeWindow{Start: start, End: start.Add(24 * time.Hour)}
}

func providerTx(externalID string, amount int64) *models.Transaction {
	return &models.Transaction{
		ID:         uuid.New(),
		Source:     models.SourceProvider,
		ExternalID: externalID,
		Amount:     amount,
		Currency:   "VND",
		Status:     models.StatusSucceeded,
		CreatedAt:  time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	}
}

func localTx(externalID string, amount int64, link string) *models.Transaction {
	tx := &models.Transaction{
		ID:         uuid.New(),
		Source:     models.SourceLocal,
		ExternalID: externalID,
		Amount:     amount,
		Currency:   "VND",
		Status:     models.StatusSucceeded,
		CreatedAt:  time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
	}
	if link != "" {
		tx.Metadata = models.Metadata{models.MetadataKeyLink: link}
	}
	return tx
}

func expectRun(deps *testDeps, txs []*models.Transaction) {
	deps.transactionRepo.EXPECT().
		GetTransactionsInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(txs, nil)
	deps.reportRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)
}

func TestReconcile_LinkedCounterpart(t *testing.T) {
	// Scenario: provider and local records agree via an explicit link.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_x", 1_000_000),
		localTx("erp_pi_x", 1_000_000, "pi_x"),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalTransactions)
	assert.Equal(t, 0, report.Mismatches)
	assert.Equal(t, 1, report.Summary.MatchedCount)
	assert.Empty(t, report.Summary.MismatchedIDs)
}

func TestReconcile_MissingLocalCounterpart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_y", 500),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalTransactions)
	assert.Equal(t, 1, report.Mismatches)
	assert.Equal(t, []string{"pi_y"}, report.Summary.MismatchedIDs)
	require.Len(t, report.Summary.MismatchedDetails, 1)
	assert.Equal(t, "Missing local record for provider transaction pi_y (500 VND)", report.Summary.MismatchedDetails[0])
}

func TestReconcile_EmptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, nil)

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalTransactions)
	assert.Equal(t, 0, report.Mismatches)
	assert.Equal(t, 0, report.Summary.MatchedCount)
}

func TestReconcile_MismatchOrderFollowsFetchOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_a", 100),
		providerTx("pi_b", 200),
		providerTx("pi_c", 300),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, []string{"pi_a", "pi_b", "pi_c"}, report.Summary.MismatchedIDs)
}

func TestReconcile_ExcludesUnsuccessfulTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := providerTx("pi_pending", 100)
	pending.Status = models.StatusPending
	failedLocal := localTx("erp_1", 200, "")
	failedLocal.Status = models.StatusFailed

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, []*models.Transaction{
		pending,
		providerTx("pi_ok", 200),
		failedLocal,
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	// The pending provider record does not count; the failed local record
	// cannot satisfy the weak match.
	assert.Equal(t, 1, report.TotalTransactions)
	assert.Equal(t, 1, report.Mismatches)
	assert.Equal(t, []string{"pi_ok"}, report.Summary.MismatchedIDs)
}

func TestReconcile_LooseModeDoesNotConsumeLocalRecords(t *testing.T) {
	// Reference behavior: one local record may satisfy several provider
	// records sharing the same amount, and local surplus is invisible.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_1", 500),
		providerTx("pi_2", 500),
		localTx("erp_1", 500, ""),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.MatchedCount)
	assert.Equal(t, 0, report.Mismatches)
}

func TestReconcile_StrictModeConsumesLocalRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, true)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_1", 500),
		providerTx("pi_2", 500),
		localTx("erp_1", 500, ""),
		localTx("erp_2", 999, ""),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.MatchedCount)
	assert.Equal(t, 1, report.Mismatches)
	// Provider-side mismatches first, then the local surplus category.
	assert.Equal(t, []string{"pi_2", "erp_2"}, report.Summary.MismatchedIDs)
	require.Len(t, report.Summary.MismatchedDetails, 2)
	assert.Equal(t, "No provider record for local transaction erp_2 (999 VND)", report.Summary.MismatchedDetails[1])
}

func TestReconcile_StrictModeReservesLinkedRecords(t *testing.T) {
	// An amount match must not consume a local record that a later provider
	// transaction links to.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, true)
	expectRun(deps, []*models.Transaction{
		providerTx("pi_a", 100),
		providerTx("pi_b", 100),
		localTx("erp_1", 100, "pi_b"),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.MatchedCount)
	assert.Equal(t, 1, report.Mismatches)
	assert.Equal(t, []string{"pi_a"}, report.Summary.MismatchedIDs)
}

func TestReconcile_StrongMatchBeatsWeakMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, true)
	// The linked record has a different amount; it must still win over the
	// amount-only candidate.
	expectRun(deps, []*models.Transaction{
		providerTx("pi_1", 500),
		localTx("erp_linked", 999, "pi_1"),
		localTx("erp_amount", 500, ""),
	})

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.MatchedCount)
	// The amount-only local record is left over and reported as surplus.
	assert.Equal(t, []string{"erp_amount"}, report.Summary.MismatchedIDs)
}

func TestReconcile_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(t, ctrl, false)

	window := testWindow()
	window.Start, window.End = window.End, window.Start

	_, err := uc.Reconcile(context.Background(), window)

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestReconcile_FetchFailureProducesNoReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	deps.transactionRepo.EXPECT().
		GetTransactionsInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Wrap(errors.New("connection refused"), apperrors.KindFetch, "failed to fetch transactions"))

	_, err := uc.Reconcile(context.Background(), testWindow())

	assert.True(t, apperrors.Is(err, apperrors.KindFetch))
}

func TestReconcile_PersistFailureSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	deps.transactionRepo.EXPECT().
		GetTransactionsInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	deps.reportRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindPersistence, "failed to create report"))

	_, err := uc.Reconcile(context.Background(), testWindow())

	assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
}

func TestReconcile_PublishFailureDoesNotFailRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)
	deps.transactionRepo.EXPECT().
		GetTransactionsInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	deps.reportRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().
		PublishReconciliationCompleted(gomock.Any(), gomock.Any()).
		Return(errors.New("nsq unavailable"))

	report, err := uc.Reconcile(context.Background(), testWindow())

	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestReconcile_ReportCarriesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	var persisted *models.Report
	deps.transactionRepo.EXPECT().
		GetTransactionsInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	deps.reportRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.Report) error {
			persisted = report
			return nil
		})
	deps.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	window := testWindow()
	report, err := uc.Reconcile(context.Background(), window)

	require.NoError(t, err)
	assert.Same(t, persisted, report)
	assert.Equal(t, window.Start, report.WindowStart)
	assert.Equal(t, window.End, report.WindowEnd)
}
