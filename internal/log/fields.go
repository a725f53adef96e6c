package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldPath       = "path"
	FieldRows       = "rows"
	FieldBusinesses = "businesses"
	FieldTotal      = "total_kg_co2e"
	FieldOperation  = "operation"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentIngest  = "ingest"
	ComponentSession = "session"
	ComponentChart   = "chart"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpAggregate = "aggregate"
	OpRender    = "render"
)
