package response

const (
	// MessageSuccess is the message returned on every successful response.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internals from clients on 500s.
	DefaultErrorMessage = "Something went wrong"

	// DateFormat renders Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
