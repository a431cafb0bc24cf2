package api

import (
	"context"
	"fmt"

	"github.com/mohammadmehrani/CAD/internal/models"
)

// Conversations lists the caller's conversations.
func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := c.get(ctx, "/messaging/conversations/", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateConversation opens a new conversation with an initial message.
func (c *Client) CreateConversation(ctx context.Context, req *models.NewConversationRequest) (*models.Conversation, error) {
	var out models.Conversation
	if err := c.post(ctx, "/messaging/conversations/create/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conversation fetches one conversation by id.
func (c *Client) Conversation(ctx context.Context, id int64) (*models.Conversation, error) {
	var out models.Conversation
	if err := c.get(ctx, fmt.Sprintf("/messaging/conversations/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages lists the messages of a conversation.
func (c *Client) Messages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	var messages []models.Message
	if err := c.get(ctx, fmt.Sprintf("/messaging/conversations/%d/messages/", conversationID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a message into a conversation.
func (c *Client) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error) {
	var out models.Message
	if err := c.post(ctx, "/messaging/messages/send/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkMessageRead marks one message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID int64) error {
	return c.post(ctx, fmt.Sprintf("/messaging/messages/%d/read/", messageID), nil, nil)
}

// Notifications lists the caller's notifications.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.get(ctx, "/messaging/notifications/", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/messaging/notifications/%d/read/", id), nil, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/messaging/notifications/read-all/", nil, nil)
}

// UnreadCounts fetches the unread message/notification counters.
func (c *Client) UnreadCounts(ctx context.Context) (*models.UnreadCounts, error) {
	var counts models.UnreadCounts
	if err := c.get(ctx, "/messaging/unread-counts/", nil, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// AdminConversations lists every conversation (staff only).
func (c *Client) AdminConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := c.get(ctx, "/messaging/admin/conversations/", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// AdminReply posts a staff reply into any conversation.
func (c *Client) AdminReply(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error) {
	var out models.Message
	if err := c.post(ctx, "/messaging/admin/messages/send/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
