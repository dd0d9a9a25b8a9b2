package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concily/reconciliation/internal/pkg/models"
	apperrors "github.com/concily/reconciliation/pkg/errors"
)

func setupReportRepoTest(t *testing.T) (*ReportRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ReportRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateReport(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, report *models.Report, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO reconciliation_reports").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, report.ID)
				assert.False(t, report.CreatedAt.IsZero())
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO reconciliation_reports").
					WillReturnError(errors.New("disk full"))
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupReportRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			report := &models.Report{
				WindowStart:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				WindowEnd:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
				TotalTransactions: 2,
				Mismatches:        1,
				Summary: models.ReportSummary{
					MatchedCount:      1,
					MismatchedIDs:     []string{"pi_y"},
					MismatchedDetails: []string{"Missing local record for provider transaction pi_y (500 VND)"},
				},
			}

			err := repo.CreateReport(context.Background(), report)

			tc.assertFunc(t, report, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetReport(t *testing.T) {
	reportID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	columns := []string{"id", "window_start", "window_end", "total_transactions", "mismatches", "summary", "ai_explanation", "created_at"}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, report *models.Report, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				summary := []byte(`{"matched_count":1,"mismatched_ids":["pi_y"],"mismatched_details":["Missing local record for provider transaction pi_y (500 VND)"]}`)
				rows := sqlmock.NewRows(columns).
					AddRow(reportID, time.Now(), time.Now(), 2, 1, summary, nil, time.Now())
				mock.ExpectQuery("SELECT (.+) FROM reconciliation_reports").
					WithArgs(reportID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, reportID, report.ID)
				assert.Equal(t, 1, report.Mismatches)
				assert.Equal(t, []string{"pi_y"}, report.Summary.MismatchedIDs)
				assert.Nil(t, report.AIExplanation)
			},
		},
		{
			name: "With Explanation",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(reportID, time.Now(), time.Now(), 0, 0, []byte(`{"matched_count":0,"mismatched_ids":[],"mismatched_details":[]}`), "texto generado", time.Now())
				mock.ExpectQuery("SELECT (.+) FROM reconciliation_reports").
					WithArgs(reportID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				require.NoError(t, err)
				require.NotNil(t, report.AIExplanation)
				assert.Equal(t, "texto generado", *report.AIExplanation)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM reconciliation_reports").
					WithArgs(reportID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
				assert.Nil(t, report)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM reconciliation_reports").
					WithArgs(reportID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, report *models.Report, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindFetch))
				assert.Nil(t, report)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupReportRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			report, err := repo.GetReport(context.Background(), reportID)

			tc.assertFunc(t, report, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateExplanation(t *testing.T) {
	reportID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE reconciliation_reports").
					WithArgs("texto generado", reportID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE reconciliation_reports").
					WithArgs("texto generado", reportID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE reconciliation_reports").
					WithArgs("texto generado", reportID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupReportRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.UpdateExplanation(context.Background(), reportID, "texto generado")

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
