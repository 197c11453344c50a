package models

// Notification types recorded in the admin log.
const (
	NotificationSignup = "signup"
	NotificationSignin = "signin"
	NotificationOrder  = "order"
)

// NotificationCap is the maximum number of log entries retained. When the
// log grows past the cap the oldest entry is dropped.
const NotificationCap = 50

// Notification is one entry in the admin activity log.
type Notification struct {
	ID        int64  `json:"id"` // Unix milliseconds at creation
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
