package model

// NotificationRequest is an outbound message the settlement engine asks the
// transport adapter to deliver. Delivery is best-effort.
type NotificationRequest struct {
	ChatID string
	Text   string
}
