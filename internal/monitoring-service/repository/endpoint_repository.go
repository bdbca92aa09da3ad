package repository

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EndpointRepository interface {
	ListAllEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error)
	GetEndpointsByOwner(ctx context.Context, ownerID string) ([]model.MonitoredEndpoint, error)
	GetEndpointByIdAndOwner(ctx context.Context, endpointID string, ownerID string) (model.MonitoredEndpoint, error)
	CreateEndpoint(ctx context.Context, endpoint model.MonitoredEndpoint) (model.MonitoredEndpoint, error)
	UpdateEndpoint(ctx context.Context, updatedData model.MonitoredEndpoint) (model.MonitoredEndpoint, error)
	DeleteEndpoint(ctx context.Context, endpointID string, ownerID string) error
}

type endpointRepository struct {
	db *gorm.DB
}

// ListAllEndpoints always reads from the database, the scheduler relies on
// seeing edits and deletions on the very next tick.
func (e *endpointRepository) ListAllEndpoints(ctx context.Context) ([]model.MonitoredEndpoint, error) {
	var endpoints []model.MonitoredEndpoint
	result := e.db.WithContext(ctx).Find(&endpoints)
	if result.Error != nil {
		return nil, fmt.Errorf("EndpointRepository.ListAllEndpoints: %w", result.Error)
	}
	return endpoints, nil
}

func (e *endpointRepository) GetEndpointsByOwner(ctx context.Context, ownerID string) ([]model.MonitoredEndpoint, error) {
	var endpoints []model.MonitoredEndpoint
	result := e.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at").Find(&endpoints)
	if result.Error != nil {
		return nil, fmt.Errorf("EndpointRepository.GetEndpointsByOwner: %w", result.Error)
	}
	return endpoints, nil
}

func (e *endpointRepository) GetEndpointByIdAndOwner(ctx context.Context, endpointID string, ownerID string) (model.MonitoredEndpoint, error) {
	var endpoint model.MonitoredEndpoint
	result := e.db.WithContext(ctx).Where("id = ? AND owner_id = ?", endpointID, ownerID).First(&endpoint)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return endpoint, fmt.Errorf("EndpointRepository.GetEndpointByIdAndOwner: %w", apperrors.ErrEndpointNotFound)
		}
		return endpoint, fmt.Errorf("EndpointRepository.GetEndpointByIdAndOwner: %w", result.Error)
	}
	return endpoint, nil
}

func (e *endpointRepository) CreateEndpoint(ctx context.Context, endpoint model.MonitoredEndpoint) (model.MonitoredEndpoint, error) {
	result := e.db.WithContext(ctx).Create(&endpoint)
	if result.Error != nil {
		return endpoint, fmt.Errorf("EndpointRepository.CreateEndpoint: %w", result.Error)
	}
	return endpoint, nil
}

// UpdateEndpoint changes name, url and interval only. Owner and last check date
// are never touched here.
func (e *endpointRepository) UpdateEndpoint(ctx context.Context, updatedData model.MonitoredEndpoint) (model.MonitoredEndpoint, error) {
	var endpoint model.MonitoredEndpoint
	result := e.db.WithContext(ctx).Model(&endpoint).Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", updatedData.ID, updatedData.OwnerID).
		Updates(model.MonitoredEndpoint{
			Name:               updatedData.Name,
			URL:                updatedData.URL,
			MonitoringInterval: updatedData.MonitoringInterval,
		})
	if result.Error != nil {
		return endpoint, fmt.Errorf("EndpointRepository.UpdateEndpoint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return endpoint, fmt.Errorf("EndpointRepository.UpdateEndpoint: %w", apperrors.ErrEndpointNotFound)
	}
	return endpoint, nil
}

// DeleteEndpoint removes the endpoint and all of its results in one transaction.
// The endpoint row is locked first so a check finishing concurrently either
// commits before the results are removed or fails on the foreign key afterwards.
func (e *endpointRepository) DeleteEndpoint(ctx context.Context, endpointID string, ownerID string) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var endpoint model.MonitoredEndpoint
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND owner_id = ?", endpointID, ownerID).
			First(&endpoint)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return apperrors.ErrEndpointNotFound
			}
			return result.Error
		}
		if result = tx.Where("endpoint_id = ?", endpoint.ID).Delete(&model.MonitoringResult{}); result.Error != nil {
			return result.Error
		}
		return tx.Where("id = ?", endpoint.ID).Delete(&model.MonitoredEndpoint{}).Error
	})
	if err != nil {
		return fmt.Errorf("EndpointRepository.DeleteEndpoint: %w", err)
	}
	return nil
}

func NewEndpointRepository(db *gorm.DB) EndpointRepository {
	return &endpointRepository{
		db: db,
	}
}
