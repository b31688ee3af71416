package dto

type NotificationListRequest struct {
	Tab  string `json:"tab" validate:"omitempty,oneof=all unread"`
	Type string `json:"type" validate:"omitempty"`
}

// Response DTOs

type NotificationResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
	Type    string `json:"type"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Unread        int                    `json:"unread"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}
