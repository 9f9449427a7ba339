package common

const (
	// RequestIDHeaderName carries the per-request correlation id on HTTP
	// requests and responses.
	RequestIDHeaderName = "X-Request-ID"

	// UsersCollection is the table, collection or key name under which every
	// storage backend keeps user records.
	UsersCollection = "users"
)
