package scheduler

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/event"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const unknownFailureDetail = "check failed without error detail"

type OutcomeRecorder interface {
	Record(ctx context.Context, endpoint model.MonitoredEndpoint, outcome CheckOutcome, checkedAt time.Time) error
}

type outcomeRecorder struct {
	logger     *zap.Logger
	resultRepo repository.ResultRepository
	publisher  event.Publisher
}

// Record stores a Failure with a nil status code and the error detail as payload.
// endpoint is the snapshot the check was scheduled from, its LastCheckDate
// guards against recording the same interval twice.
func (r *outcomeRecorder) Record(ctx context.Context, endpoint model.MonitoredEndpoint, outcome CheckOutcome, checkedAt time.Time) error {
	result := model.MonitoringResult{
		EndpointID: endpoint.ID,
		CheckDate:  checkedAt,
	}
	switch o := outcome.(type) {
	case Success:
		statusCode := o.StatusCode
		result.StatusCode = &statusCode
		result.Payload = o.Body
	case Failure:
		result.Payload = o.ErrorDetail
		if result.Payload == "" {
			result.Payload = unknownFailureDetail
		}
	default:
		return fmt.Errorf("OutcomeRecorder.Record: unexpected outcome %T", outcome)
	}

	recorded, err := r.resultRepo.RecordResult(ctx, result, endpoint.LastCheckDate)
	if err != nil {
		return fmt.Errorf("OutcomeRecorder.Record: %w", err)
	}

	err = r.publisher.Publish(ctx, event.NewResultRecordedEvent(endpoint, recorded))
	if err != nil {
		r.logger.Warn("failed to publish result event",
			zap.Error(fmt.Errorf("OutcomeRecorder.Record: %w", err)),
			zap.String("endpoint_id", endpoint.ID),
			zap.String("result_id", recorded.ID),
		)
	}
	return nil
}

func NewOutcomeRecorder(logger *zap.Logger, resultRepo repository.ResultRepository, publisher event.Publisher) OutcomeRecorder {
	return &outcomeRecorder{
		logger:     logger,
		resultRepo: resultRepo,
		publisher:  publisher,
	}
}
