package service

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/event"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"Endpoint_Monitoring_Service/internal/monitoring-service/repository"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const MaxResultsLimit = 100

type EndpointService interface {
	GetEndpoints(ctx context.Context, ownerID string) ([]model.MonitoredEndpoint, error)
	GetEndpoint(ctx context.Context, endpointID string, ownerID string) (model.MonitoredEndpoint, error)
	CreateEndpoint(ctx context.Context, endpoint model.MonitoredEndpoint) (model.MonitoredEndpoint, error)
	UpdateEndpoint(ctx context.Context, updatedData model.MonitoredEndpoint) (model.MonitoredEndpoint, error)
	DeleteEndpoint(ctx context.Context, endpointID string, ownerID string) error
	GetLatestResults(ctx context.Context, endpointID string, ownerID string, limit int) ([]model.MonitoringResult, error)
	GetEndpointUptimePercentage(ctx context.Context, endpointID string, ownerID string, startDate time.Time, endDate time.Time) (float64, error)
}

type endpointService struct {
	logger       *zap.Logger
	endpointRepo repository.EndpointRepository
	resultRepo   repository.ResultRepository
	uptimeRepo   repository.UptimeRepository
	publisher    event.Publisher
	defaultLimit int
}

func (s *endpointService) GetEndpoints(ctx context.Context, ownerID string) ([]model.MonitoredEndpoint, error) {
	endpoints, err := s.endpointRepo.GetEndpointsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("EndpointService.GetEndpoints: %w", err)
	}
	return endpoints, nil
}

func (s *endpointService) GetEndpoint(ctx context.Context, endpointID string, ownerID string) (model.MonitoredEndpoint, error) {
	endpoint, err := s.endpointRepo.GetEndpointByIdAndOwner(ctx, endpointID, ownerID)
	if err != nil {
		return endpoint, fmt.Errorf("EndpointService.GetEndpoint: %w", err)
	}
	return endpoint, nil
}

// CreateEndpoint ignores any client supplied last check date, a new endpoint
// is always due on the next tick.
func (s *endpointService) CreateEndpoint(ctx context.Context, endpoint model.MonitoredEndpoint) (model.MonitoredEndpoint, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return endpoint, fmt.Errorf("EndpointService.CreateEndpoint: %w", err)
	}
	endpoint.ID = ""
	endpoint.LastCheckDate = nil
	created, err := s.endpointRepo.CreateEndpoint(ctx, endpoint)
	if err != nil {
		return endpoint, fmt.Errorf("EndpointService.CreateEndpoint: %w", err)
	}
	return created, nil
}

func (s *endpointService) UpdateEndpoint(ctx context.Context, updatedData model.MonitoredEndpoint) (model.MonitoredEndpoint, error) {
	if err := validateEndpoint(updatedData); err != nil {
		return model.MonitoredEndpoint{}, fmt.Errorf("EndpointService.UpdateEndpoint: %w", err)
	}
	updated, err := s.endpointRepo.UpdateEndpoint(ctx, updatedData)
	if err != nil {
		return model.MonitoredEndpoint{}, fmt.Errorf("EndpointService.UpdateEndpoint: %w", err)
	}
	return updated, nil
}

func (s *endpointService) DeleteEndpoint(ctx context.Context, endpointID string, ownerID string) error {
	err := s.endpointRepo.DeleteEndpoint(ctx, endpointID, ownerID)
	if err != nil {
		return fmt.Errorf("EndpointService.DeleteEndpoint: %w", err)
	}
	if err = s.publisher.Publish(ctx, event.NewEndpointDeletedEvent(endpointID)); err != nil {
		s.logger.Warn("failed to publish endpoint deleted event",
			zap.Error(fmt.Errorf("EndpointService.DeleteEndpoint: %w", err)),
			zap.String("endpoint_id", endpointID),
		)
	}
	return nil
}

// GetLatestResults returns at most limit results, newest first. A non-positive
// limit falls back to the configured default.
func (s *endpointService) GetLatestResults(ctx context.Context, endpointID string, ownerID string, limit int) ([]model.MonitoringResult, error) {
	if _, err := s.endpointRepo.GetEndpointByIdAndOwner(ctx, endpointID, ownerID); err != nil {
		return nil, fmt.Errorf("EndpointService.GetLatestResults: %w", err)
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > MaxResultsLimit {
		limit = MaxResultsLimit
	}
	results, err := s.resultRepo.GetLatestResults(ctx, endpointID, limit)
	if err != nil {
		return nil, fmt.Errorf("EndpointService.GetLatestResults: %w", err)
	}
	return results, nil
}

func (s *endpointService) GetEndpointUptimePercentage(ctx context.Context, endpointID string, ownerID string, startDate time.Time, endDate time.Time) (float64, error) {
	if !startDate.Before(endDate) {
		return 0, fmt.Errorf("EndpointService.GetEndpointUptimePercentage: %w", apperrors.ErrInvalidDateRange)
	}
	if _, err := s.endpointRepo.GetEndpointByIdAndOwner(ctx, endpointID, ownerID); err != nil {
		return 0, fmt.Errorf("EndpointService.GetEndpointUptimePercentage: %w", err)
	}
	if s.uptimeRepo == nil {
		return 0, fmt.Errorf("EndpointService.GetEndpointUptimePercentage: %w", apperrors.ErrUptimeUnavailable)
	}
	res, err := s.uptimeRepo.GetEndpointUptimePercentage(ctx, endpointID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("EndpointService.GetEndpointUptimePercentage: %w", err)
	}
	return res, nil
}

func validateEndpoint(endpoint model.MonitoredEndpoint) error {
	if strings.TrimSpace(endpoint.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrInvalidEndpoint)
	}
	if endpoint.MonitoringInterval < 1 {
		return fmt.Errorf("%w: interval must be at least 1 second", apperrors.ErrInvalidEndpoint)
	}
	u, err := url.Parse(endpoint.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be an absolute http or https url", apperrors.ErrInvalidEndpoint)
	}
	return nil
}

// NewEndpointService accepts a nil uptimeRepo when Elasticsearch is not configured.
func NewEndpointService(logger *zap.Logger, endpointRepo repository.EndpointRepository, resultRepo repository.ResultRepository, uptimeRepo repository.UptimeRepository, publisher event.Publisher, defaultLimit int) EndpointService {
	if defaultLimit <= 0 || defaultLimit > MaxResultsLimit {
		defaultLimit = 10
	}
	return &endpointService{
		logger:       logger,
		endpointRepo: endpointRepo,
		resultRepo:   resultRepo,
		uptimeRepo:   uptimeRepo,
		publisher:    publisher,
		defaultLimit: defaultLimit,
	}
}
