package repositories

import (
	"context"
	"fmt"

	gormModels "github.com/DiegoCorrea07/CoreMVC/internal/models/gorm"

	"gorm.io/gorm"
)

// CoverageAlertRepository persists alerts raised for inadequate coverage.
type CoverageAlertRepository struct {
	db *gorm.DB
}

func NewCoverageAlertRepository(db *gorm.DB) *CoverageAlertRepository {
	return &CoverageAlertRepository{db: db}
}

// Create inserts one alert. The referenced snapshot must already exist.
func (r *CoverageAlertRepository) Create(ctx context.Context, alert *gormModels.CoverageAlert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to insert coverage alert: %w", err)
	}
	return nil
}

// ListForCoverage returns all alerts tied to one snapshot.
func (r *CoverageAlertRepository) ListForCoverage(ctx context.Context, coverageID int64) ([]gormModels.CoverageAlert, error) {
	var alerts []gormModels.CoverageAlert

	err := r.db.WithContext(ctx).
		Where("cobertura_id = ?", coverageID).
		Order("fecha_generacion DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

// ListForEventRoute returns all alerts raised for any snapshot of one
// event-route, newest first.
func (r *CoverageAlertRepository) ListForEventRoute(ctx context.Context, eventRouteID int64) ([]gormModels.CoverageAlert, error) {
	var alerts []gormModels.CoverageAlert

	err := r.db.WithContext(ctx).
		Joins("JOIN cobertura_real ON cobertura_real.id = alertas_cobertura.cobertura_id").
		Where("cobertura_real.ruta_evento_id = ?", eventRouteID).
		Order("alertas_cobertura.fecha_generacion DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for event route: %w", err)
	}

	return alerts, nil
}
