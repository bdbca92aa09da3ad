package repository

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResult(t *testing.T) {
	testErr := errors.New("test error")
	checkDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	status := 200
	insertSQL := `INSERT INTO "monitoring_results" ("endpoint_id","check_date","status_code","payload") VALUES ($1,$2,$3,$4) RETURNING "id"`
	updateSQL := `UPDATE "monitored_endpoints" SET "last_check_date"=$1,"updated_at"=$2 WHERE id = $3 AND last_check_date IS NULL`
	previous := checkDate.Add(-time.Minute)
	updateFromPreviousSQL := `UPDATE "monitored_endpoints" SET "last_check_date"=$1,"updated_at"=$2 WHERE id = $3 AND last_check_date = $4`

	tests := []struct {
		name          string
		input         model.MonitoringResult
		previousCheck *time.Time
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:  "Success result appended and last check date moved",
			input: model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status, Payload: "ok"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("e-1", checkDate, sqlmock.AnyArg(), "ok").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-1"))
				mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
					WithArgs(checkDate, sqlmock.AnyArg(), "e-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "Success failure outcome without status code",
			input: model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, Payload: "dial tcp: connection refused"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs("e-1", checkDate, sqlmock.AnyArg(), "dial tcp: connection refused").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-2"))
				mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
					WithArgs(checkDate, sqlmock.AnyArg(), "e-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:          "Success last check date moved from the scheduled value",
			input:         model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status, Payload: "ok"},
			previousCheck: &previous,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-5"))
				mock.ExpectExec(regexp.QuoteMeta(updateFromPreviousSQL)).
					WithArgs(checkDate, sqlmock.AnyArg(), "e-1", previous).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:          "Error interval already recorded by another run rolls back",
			input:         model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status},
			previousCheck: &previous,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-6"))
				mock.ExpectExec(regexp.QuoteMeta(updateFromPreviousSQL)).
					WithArgs(checkDate, sqlmock.AnyArg(), "e-1", previous).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrStaleCheck,
		},
		{
			name:  "Error endpoint deleted before insert",
			input: model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrEndpointNotFound,
		},
		{
			name:  "Error first check already recorded rolls back the insert",
			input: model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-3"))
				mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrStaleCheck,
		},
		{
			name:  "Error update fails rolls back the insert",
			input: model.MonitoringResult{EndpointID: "e-1", CheckDate: checkDate, StatusCode: &status},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-4"))
				mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewResultRepository(db)
			tc.mockSetup(mock)

			recorded, err := repo.RecordResult(context.Background(), tc.input, tc.previousCheck)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, recorded.ID)
				assert.Equal(t, tc.input.StatusCode, recorded.StatusCode)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetLatestResults(t *testing.T) {
	testErr := errors.New("test error")
	selectSQL := `SELECT * FROM "monitoring_results" WHERE endpoint_id = $1 ORDER BY check_date DESC LIMIT $2`
	newest := time.Date(2025, 3, 1, 10, 1, 0, 0, time.UTC)
	older := newest.Add(-time.Minute)

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success newest first",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "endpoint_id", "check_date", "status_code", "payload"}).
					AddRow("r-2", "e-1", newest, nil, "timeout").
					AddRow("r-1", "e-1", older, 200, "ok")
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).WithArgs("e-1", 10).WillReturnRows(rows)
			},
		},
		{
			name: "Error Generic Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).WithArgs("e-1", 10).WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewResultRepository(db)
			tc.mockSetup(mock)

			results, err := repo.GetLatestResults(context.Background(), "e-1", 10)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				require.Len(t, results, 2)
				assert.Equal(t, "r-2", results[0].ID)
				assert.True(t, results[0].Failed())
				require.NotNil(t, results[1].StatusCode)
				assert.Equal(t, 200, *results[1].StatusCode)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
