package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Internal server error"
)
