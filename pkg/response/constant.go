package response

// Envelope constants shared by all handlers.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
