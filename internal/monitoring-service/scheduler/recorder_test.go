package scheduler

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/event"
	mockrepository "Endpoint_Monitoring_Service/internal/monitoring-service/mocks/repository"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestOutcomeRecorder_Record(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	endpoint := model.MonitoredEndpoint{ID: "e-1", URL: "https://a.example.com", MonitoringInterval: 60}
	testErr := errors.New("db down")

	testCases := []struct {
		name          string
		outcome       CheckOutcome
		setupMocks    func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher)
		expectedError error
		expectAnyErr  bool
	}{
		{
			name:    "Success outcome stores status and body",
			outcome: Success{StatusCode: 200, Body: "ok"},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				gomock.InOrder(
					repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, r model.MonitoringResult, _ *time.Time) (model.MonitoringResult, error) {
							assert.Equal(t, "e-1", r.EndpointID)
							assert.Equal(t, checkedAt, r.CheckDate)
							require.NotNil(t, r.StatusCode)
							assert.Equal(t, 200, *r.StatusCode)
							assert.Equal(t, "ok", r.Payload)
							r.ID = "r-1"
							return r, nil
						}),
					pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, e event.MonitoringEvent) error {
							assert.Equal(t, event.TypeResultRecorded, e.Type)
							assert.Equal(t, "r-1", e.ResultID)
							assert.Equal(t, 1, e.Up)
							return nil
						}),
				)
			},
		},
		{
			name:    "Success error status code is still recorded as response",
			outcome: Success{StatusCode: 503, Body: "unavailable"},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r model.MonitoringResult, _ *time.Time) (model.MonitoringResult, error) {
						require.NotNil(t, r.StatusCode)
						assert.Equal(t, 503, *r.StatusCode)
						return r, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e event.MonitoringEvent) error {
						assert.Equal(t, 0, e.Up)
						return nil
					})
			},
		},
		{
			name:    "Success failure outcome stores nil status and error detail",
			outcome: Failure{ErrorDetail: "dial tcp: connection refused"},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r model.MonitoringResult, _ *time.Time) (model.MonitoringResult, error) {
						assert.Nil(t, r.StatusCode)
						assert.Equal(t, "dial tcp: connection refused", r.Payload)
						assert.Equal(t, checkedAt, r.CheckDate)
						return r, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Success failure without detail gets a placeholder",
			outcome: Failure{},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r model.MonitoringResult, _ *time.Time) (model.MonitoringResult, error) {
						assert.NotEmpty(t, r.Payload)
						return r, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Success publish error is not returned",
			outcome: Success{StatusCode: 200},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.MonitoringResult{ID: "r-1"}, nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
		},
		{
			name:    "Error store failure is returned and nothing is published",
			outcome: Success{StatusCode: 200},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.MonitoringResult{}, testErr)
			},
			expectedError: testErr,
		},
		{
			name:    "Error endpoint deleted meanwhile",
			outcome: Success{StatusCode: 200},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.MonitoringResult{}, apperrors.ErrEndpointNotFound)
			},
			expectedError: apperrors.ErrEndpointNotFound,
		},
		{
			name:    "Error interval already recorded by another run",
			outcome: Success{StatusCode: 200},
			setupMocks: func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {
				repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.MonitoringResult{}, apperrors.ErrStaleCheck)
			},
			expectedError: apperrors.ErrStaleCheck,
		},
		{
			name:         "Error nil outcome",
			outcome:      nil,
			setupMocks:   func(repo *mockrepository.MockResultRepository, pub *event.MockPublisher) {},
			expectAnyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mockrepository.NewMockResultRepository(ctrl)
			pub := event.NewMockPublisher(ctrl)
			tc.setupMocks(repo, pub)

			recorder := NewOutcomeRecorder(zap.NewNop(), repo, pub)
			err := recorder.Record(context.Background(), endpoint, tc.outcome, checkedAt)

			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
			case tc.expectAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutcomeRecorder_RecordGuardsOnScheduledLastCheck(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 1, 0, 0, time.UTC)
	lastCheck := checkedAt.Add(-time.Minute)

	testCases := []struct {
		name      string
		lastCheck *time.Time
	}{
		{name: "never checked", lastCheck: nil},
		{name: "checked before", lastCheck: &lastCheck},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mockrepository.NewMockResultRepository(ctrl)
			pub := event.NewMockPublisher(ctrl)
			endpoint := model.MonitoredEndpoint{ID: "e-1", MonitoringInterval: 60, LastCheckDate: tc.lastCheck}

			repo.EXPECT().RecordResult(gomock.Any(), gomock.Any(), tc.lastCheck).Return(model.MonitoringResult{ID: "r-1"}, nil)
			pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

			err := NewOutcomeRecorder(zap.NewNop(), repo, pub).Record(context.Background(), endpoint, Success{StatusCode: 200}, checkedAt)
			assert.NoError(t, err)
		})
	}
}
