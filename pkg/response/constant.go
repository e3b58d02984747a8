package response

const (
	MessageSuccess = "Success"

	DefaultErrorCode        = 1
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	DefaultErrorMessage    = "Something went wrong"
	TooManyRequestsMessage = "Too many requests"
)
