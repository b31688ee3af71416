package entity

// NotificationType categorizes notifications for display
type NotificationType string

const (
	NotificationTypeAppointment  NotificationType = "appointment"
	NotificationTypeCancellation NotificationType = "cancellation"
	NotificationTypeSystem       NotificationType = "system"
	NotificationTypeReminder     NotificationType = "reminder"
)

// Notification is an admin inbox entry. Time is a display string such as
// "2 hours ago", not a timestamp.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}

func (n Notification) GetID() string {
	return n.ID
}

// MarkRead flips the notification to read. Read never goes back to false.
func (n *Notification) MarkRead() {
	n.Read = true
}
