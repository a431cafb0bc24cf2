package models

// Conversation is a support thread between a user and the staff.
type Conversation struct {
	ID          int64    `json:"id"`
	Participant *User    `json:"participant,omitempty"`
	Subject     string   `json:"subject"`
	IsActive    bool     `json:"is_active"`
	UnreadCount int      `json:"unread_count"`
	LastMessage *Message `json:"last_message,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// Message is one message within a conversation.
type Message struct {
	ID           int64  `json:"id"`
	Conversation int64  `json:"conversation"`
	Sender       *User  `json:"sender,omitempty"`
	Content      string `json:"content"`
	Attachment   string `json:"attachment,omitempty"`
	IsRead       bool   `json:"is_read"`
	ReadAt       string `json:"read_at,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// NotificationType enumerates notification kinds.
type NotificationType string

const (
	NotificationMessage NotificationType = "message"
	NotificationSystem  NotificationType = "system"
	NotificationUpdate  NotificationType = "update"
)

// Notification is one entry on the notifications page.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"notification_type"`
	Title     string           `json:"title"`
	Content   string           `json:"content,omitempty"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// UnreadCounts mirrors GET /messaging/unread-counts/. The counts reflect
// the last fetched server state, nothing more.
type UnreadCounts struct {
	Messages      int `json:"unread_messages"`
	Notifications int `json:"unread_notifications"`
}

// NewConversationRequest is the payload for POST /messaging/conversations/create/.
type NewConversationRequest struct {
	Subject        string `json:"subject"`
	InitialMessage string `json:"initial_message"`
}

// SendMessageRequest is the payload for POST /messaging/messages/send/.
type SendMessageRequest struct {
	Conversation int64  `json:"conversation"`
	Content      string `json:"content"`
}
