package domain

// Notification is a user-facing message with a display class hint
// (for example "red accent-3" for errors).
type Notification struct {
	Message string
	Class   string
}
