package constants

const (
	// ListEventRouteCoverage aggregates offered capacity per event-route in
	// one pass. The LEFT JOIN onto vuelos keeps routes without flights in
	// the result with capacity 0.
	ListEventRouteCoverage = `
	SELECT re.id,
	       re.demanda_estimada,
	       r.origen,
	       r.destino,
	       e.nombre_evento,
	       COALESCE(SUM(a.capacidad), 0) AS capacidad_real
	FROM rutas_eventos re
	LEFT JOIN rutas r ON r.id = re.ruta_id
	LEFT JOIN eventos e ON e.id = re.evento_id
	LEFT JOIN vuelos v ON v.ruta_evento_id = re.id
	LEFT JOIN aeronaves a ON a.id = v.aeronave_id
	GROUP BY re.id, re.demanda_estimada, r.origen, r.destino, e.nombre_evento
	ORDER BY re.id
	`

	ListEventRouteCoverageByEvent = `
	SELECT re.id,
	       re.demanda_estimada,
	       r.origen,
	       r.destino,
	       e.nombre_evento,
	       COALESCE(SUM(a.capacidad), 0) AS capacidad_real
	FROM rutas_eventos re
	LEFT JOIN rutas r ON r.id = re.ruta_id
	LEFT JOIN eventos e ON e.id = re.evento_id
	LEFT JOIN vuelos v ON v.ruta_evento_id = re.id
	LEFT JOIN aeronaves a ON a.id = v.aeronave_id
	WHERE re.evento_id = $1
	GROUP BY re.id, re.demanda_estimada, r.origen, r.destino, e.nombre_evento
	ORDER BY re.id
	`

	GetEventRouteDetail = `
	SELECT re.id,
	       re.demanda_estimada,
	       r.origen,
	       r.destino,
	       e.nombre_evento,
	       e.fecha_inicio,
	       e.fecha_fin
	FROM rutas_eventos re
	LEFT JOIN rutas r ON r.id = re.ruta_id
	LEFT JOIN eventos e ON e.id = re.evento_id
	WHERE re.id = $1
	`

	// CapacityByWeekday buckets offered capacity by departure day of week
	// inside the event window. EXTRACT(DOW ...) yields 0=Sunday..6=Saturday.
	CapacityByWeekday = `
	SELECT EXTRACT(DOW FROM v.fecha_salida)::int AS day_of_week,
	       COALESCE(SUM(a.capacidad), 0)         AS capacidad
	FROM vuelos v
	JOIN aeronaves a ON a.id = v.aeronave_id
	WHERE v.ruta_evento_id = $1
	  AND v.fecha_salida >= $2
	  AND v.fecha_salida <= $3
	GROUP BY EXTRACT(DOW FROM v.fecha_salida)
	`
)
