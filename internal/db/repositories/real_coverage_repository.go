package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "github.com/DiegoCorrea07/CoreMVC/internal/models/gorm"

	"gorm.io/gorm"
)

// RealCoverageRepository appends coverage snapshots and serves the latest
// one per event-route. Snapshot history is never updated or deduplicated.
type RealCoverageRepository struct {
	db *gorm.DB
}

func NewRealCoverageRepository(db *gorm.DB) *RealCoverageRepository {
	return &RealCoverageRepository{db: db}
}

// Create inserts one snapshot row and fills in the assigned id.
func (r *RealCoverageRepository) Create(ctx context.Context, snapshot *gormModels.RealCoverage) error {
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to insert coverage snapshot: %w", err)
	}
	return nil
}

// GetLatestForEventRoute returns the most recent snapshot for an
// event-route, or (nil, nil) when no history exists yet.
func (r *RealCoverageRepository) GetLatestForEventRoute(ctx context.Context, eventRouteID int64) (*gormModels.RealCoverage, error) {
	var snapshot gormModels.RealCoverage

	err := r.db.WithContext(ctx).
		Where("ruta_evento_id = ?", eventRouteID).
		Order("fecha_calculo DESC").
		First(&snapshot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest coverage: %w", err)
	}

	return &snapshot, nil
}

// ListForEventRoute returns the full snapshot history for an event-route,
// newest first.
func (r *RealCoverageRepository) ListForEventRoute(ctx context.Context, eventRouteID int64) ([]gormModels.RealCoverage, error) {
	var snapshots []gormModels.RealCoverage

	err := r.db.WithContext(ctx).
		Where("ruta_evento_id = ?", eventRouteID).
		Order("fecha_calculo DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list coverage history: %w", err)
	}

	return snapshots, nil
}
