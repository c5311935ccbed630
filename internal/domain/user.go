package domain

// User is the author of feedback records.
// ID is opaque to clients; the backend issues UUID strings.
type User struct {
	ID       string
	Username string
}

// MaxUsernameLength is the exclusive upper bound on username length
// enforced by the backend.
const MaxUsernameLength = 255
