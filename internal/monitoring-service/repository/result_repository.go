package repository

import (
	apperrors "Endpoint_Monitoring_Service/internal/monitoring-service/errors"
	"Endpoint_Monitoring_Service/internal/monitoring-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ResultRepository interface {
	RecordResult(ctx context.Context, result model.MonitoringResult, previousCheck *time.Time) (model.MonitoringResult, error)
	GetLatestResults(ctx context.Context, endpointID string, limit int) ([]model.MonitoringResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

// RecordResult appends the result and moves the endpoint's last check date to
// the result's check date. Both writes commit together or not at all.
// previousCheck is the last check date the check was scheduled from; when the
// row no longer holds it another run already recorded this interval and
// ErrStaleCheck is returned.
func (r *resultRepository) RecordResult(ctx context.Context, result model.MonitoringResult, previousCheck *time.Time) (model.MonitoringResult, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e := tx.Create(&result).Error; e != nil {
			var pgErr *pgconn.PgError
			if errors.As(e, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return apperrors.ErrEndpointNotFound
			}
			return e
		}
		query := tx.Model(&model.MonitoredEndpoint{}).Where("id = ?", result.EndpointID)
		if previousCheck == nil {
			query = query.Where("last_check_date IS NULL")
		} else {
			query = query.Where("last_check_date = ?", *previousCheck)
		}
		updated := query.Update("last_check_date", result.CheckDate)
		if updated.Error != nil {
			return updated.Error
		}
		// the insert above already proved the endpoint exists
		if updated.RowsAffected == 0 {
			return apperrors.ErrStaleCheck
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("ResultRepository.RecordResult: %w", err)
	}
	return result, nil
}

func (r *resultRepository) GetLatestResults(ctx context.Context, endpointID string, limit int) ([]model.MonitoringResult, error) {
	var results []model.MonitoringResult
	query := r.db.WithContext(ctx).Where("endpoint_id = ?", endpointID).Order("check_date DESC").Limit(limit)
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("ResultRepository.GetLatestResults: %w", err)
	}
	return results, nil
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{
		db: db,
	}
}
