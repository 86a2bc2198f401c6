package gorm

import "time"

// RealCoverage is one persisted coverage computation. The table is
// append-only: every dashboard view that records produces new rows.
type RealCoverage struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventRouteID int64     `gorm:"column:ruta_evento_id;index"`
	RealCapacity int       `gorm:"column:capacidad_real"`
	CoveragePct  float64   `gorm:"column:porcentaje_cobertura;type:numeric(5,2)"`
	Status       string    `gorm:"column:estado_cobertura;size:20"`
	ComputedAt   time.Time `gorm:"column:fecha_calculo"`
}

// TableName specifies the table name for GORM
func (RealCoverage) TableName() string {
	return "cobertura_real"
}
