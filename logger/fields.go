package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldTraceID   = "trace_id"
	FieldRequestID = "request_id"
	FieldKind      = "kind"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldCause     = "cause"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("translated", logger.Fields("kind", "not_found", "status", 404))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed operation.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		"operation": op,
		FieldError:  err.Error(),
	}
}
