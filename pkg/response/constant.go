package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)

// DateTimeFormat is the wire format for DateTime fields.
const DateTimeFormat = "2006-01-02 15:04:05"
