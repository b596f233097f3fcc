package log

const (
	ModeDebug      = "debug"
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// FieldRequestID is the structured field carrying the request id.
	FieldRequestID = "request_id"
)
