package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concily/reconciliation/internal/pkg/models"
	apperrors "github.com/concily/reconciliation/pkg/errors"
)

func cleanReport() *models.Report {
	return &models.Report{
		ID:                uuid.New(),
		WindowStart:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		WindowEnd:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		TotalTransactions: 42,
		Mismatches:        0,
		Summary: models.ReportSummary{
			MatchedCount:      42,
			MismatchedIDs:     []string{},
			MismatchedDetails: []string{},
		},
	}
}

func mismatchedReport() *models.Report {
	report := cleanReport()
	report.Mismatches = 4
	report.Summary.MatchedCount = 38
	report.Summary.MismatchedIDs = []string{"pi_1", "pi_2", "pi_3", "pi_4"}
	report.Summary.MismatchedDetails = []string{"d1", "d2", "d3", "d4"}
	return report
}

func TestExplain_CleanReportEnglish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := cleanReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)
	deps.reportRepo.EXPECT().UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).Return(nil)

	explanation, err := uc.Explain(context.Background(), report.ID, "en")

	require.NoError(t, err)
	assert.Contains(t, explanation, "processed 42 transactions with 100% precision")
	assert.Contains(t, explanation, "No manual action is required")
}

func TestExplain_CleanReportSpanish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := cleanReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)
	deps.reportRepo.EXPECT().UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).Return(nil)

	explanation, err := uc.Explain(context.Background(), report.ID, "es")

	require.NoError(t, err)
	assert.Contains(t, explanation, "procesó 42 transacciones con una precisión del 100%")
	assert.Contains(t, explanation, "No se requiere ninguna acción manual")
}

func TestExplain_MismatchesListFirstThreeIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := mismatchedReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)
	deps.reportRepo.EXPECT().UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).Return(nil)

	explanation, err := uc.Explain(context.Background(), report.ID, "en")

	require.NoError(t, err)
	assert.Contains(t, explanation, "4 discrepancies were detected")
	assert.Contains(t, explanation, "out of a total of 42 transactions")
	assert.Contains(t, explanation, "pi_1, pi_2, pi_3")
	assert.NotContains(t, explanation, "pi_4")
}

func TestExplain_DeterministicAcrossCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := mismatchedReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil).Times(2)
	deps.reportRepo.EXPECT().UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).Return(nil).Times(2)

	first, err := uc.Explain(context.Background(), report.ID, "es")
	require.NoError(t, err)
	second, err := uc.Explain(context.Background(), report.ID, "es")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExplain_PersistsGeneratedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := cleanReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)

	var saved string
	deps.reportRepo.EXPECT().
		UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, explanation string) error {
			saved = explanation
			return nil
		})

	explanation, err := uc.Explain(context.Background(), report.ID, "en")

	require.NoError(t, err)
	assert.Equal(t, explanation, saved)
}

func TestExplain_EmptyLocaleUsesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	report := cleanReport()
	deps.reportRepo.EXPECT().GetReport(gomock.Any(), report.ID).Return(report, nil)
	deps.reportRepo.EXPECT().UpdateExplanation(gomock.Any(), report.ID, gomock.Any()).Return(nil)

	explanation, err := uc.Explain(context.Background(), report.ID, "")

	require.NoError(t, err)
	// The configured default locale is Spanish.
	assert.Contains(t, explanation, "procesó")
}

func TestExplain_UnsupportedLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(t, ctrl, false)

	_, err := uc.Explain(context.Background(), uuid.New(), "fr")

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestExplain_ReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, deps := newTestUC(t, ctrl, false)

	id := uuid.New()
	deps.reportRepo.EXPECT().
		GetReport(gomock.Any(), id).
		Return(nil, apperrors.NotFoundf("report %s not found", id))

	_, err := uc.Explain(context.Background(), id, "en")

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
