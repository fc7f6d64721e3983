package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Internal server error"

	// DateFormat renders dates the way users type them in chat.
	DateFormat = "02-01-2006"

	// DateTimeFormat renders instants in local wall-clock order.
	DateTimeFormat = "15:04 02-01-2006"
)
