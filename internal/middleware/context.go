package middleware

// Keys set on the gin context by the gates, for handlers to read.
const (
	// ClaimEmailKey holds the verified email from the bearer token.
	ClaimEmailKey = "claimEmail"

	// RequestIDKey holds the id generated for the current request.
	RequestIDKey = "requestId"
)
