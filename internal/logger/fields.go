package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Context-level fields, propagated through a run.
const (
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldImageID   = "image_id"
	FieldMessageID = "message_id"
	FieldProfile   = "profile"
)

// Metric fields.
const (
	FieldDurationMs = "duration_ms"
	FieldCount      = "count"
	FieldSize       = "size"
	FieldAttempt    = "attempt"
)
