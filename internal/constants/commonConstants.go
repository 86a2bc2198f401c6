package constants

type (
	APIStatus      string
	CachePrefix    string
	CoverageStatus string
	AlertKind      string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixEventRoute CachePrefix = "ER_"

	// Coverage status labels as stored in cobertura_real and consumed by
	// the dashboard clients. Labels are Spanish on the wire.
	StatusCovered  CoverageStatus = "Cubierta"
	StatusPartial  CoverageStatus = "Parcial"
	StatusCritical CoverageStatus = "Crítica"
	StatusNoData   CoverageStatus = "Sin Datos"

	AlertKindRed    AlertKind = "roja"
	AlertKindYellow AlertKind = "amarilla"
)

// WeekdayNames maps Postgres DOW numbering (0=Sunday .. 6=Saturday) to the
// localized day names the detail view renders, Sunday first.
var WeekdayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}
