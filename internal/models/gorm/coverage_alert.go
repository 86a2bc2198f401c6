package gorm

import "time"

// CoverageAlert references the snapshot that triggered it; the snapshot
// insert must complete first so the assigned id can be used here.
type CoverageAlert struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CoverageID  int64     `gorm:"column:cobertura_id;index"`
	Kind        string    `gorm:"column:tipo_alerta;size:20"`
	Description string    `gorm:"column:descripcion;type:text"`
	GeneratedAt time.Time `gorm:"column:fecha_generacion"`
}

// TableName specifies the table name for GORM
func (CoverageAlert) TableName() string {
	return "alertas_cobertura"
}
