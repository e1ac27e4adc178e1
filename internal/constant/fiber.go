package constant

const (
	// ContextKeyRequestID is the fiber Locals key holding the request id.
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Request-ID"
)
