package services

import (
	"github.com/google/uuid"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

type MessagingServiceInterface interface {
	Conversations(currentUser string) []models.ConversationSummary
	Thread(a, b string) []models.DirectMessage
	Send(sender, receiver, content, msgType string) models.DirectMessage
	MarkThreadRead(currentUser, counterpart string)
	ChatMessages() []models.ChatMessage
	SendChat(author, avatar, content, msgType string) models.ChatMessage
	React(messageID, username, emoji string) bool
}

type MessagingService struct {
	dms  *storage.Collection[models.DirectMessage]
	chat *storage.Collection[models.ChatMessage]
}

func NewMessagingService(store *storage.Store, reg *storage.Registry) MessagingServiceInterface {
	return &MessagingService{
		dms:  storage.NewCollection[models.DirectMessage](store, storage.KeyDirectMessages, "direct_messages", reg),
		chat: storage.NewCollection[models.ChatMessage](store, storage.KeyChat, "chat_messages", reg),
	}
}

func (ms *MessagingService) Conversations(currentUser string) []models.ConversationSummary {
	return BuildConversations(ms.dms.All(), currentUser)
}

func (ms *MessagingService) Thread(a, b string) []models.DirectMessage {
	return ThreadBetween(ms.dms.All(), a, b)
}

func (ms *MessagingService) Send(sender, receiver, content, msgType string) models.DirectMessage {
	if msgType == "" {
		msgType = models.MessageTypeText
	}
	msg := models.DirectMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Receiver:  receiver,
		Content:   content,
		Type:      msgType,
		Timestamp: models.NewTimestamp(),
	}
	ms.dms.Append(msg)
	return msg
}

// MarkThreadRead flags every message addressed to currentUser from
// counterpart as read.
func (ms *MessagingService) MarkThreadRead(currentUser, counterpart string) {
	ms.dms.Update(func(items []models.DirectMessage) []models.DirectMessage {
		for i := range items {
			if items[i].Receiver == currentUser && items[i].Sender == counterpart {
				items[i].Read = true
			}
		}
		return items
	})
}

func (ms *MessagingService) ChatMessages() []models.ChatMessage {
	return ms.chat.All()
}

func (ms *MessagingService) SendChat(author, avatar, content, msgType string) models.ChatMessage {
	if msgType == "" {
		msgType = models.MessageTypeText
	}
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		Type:      msgType,
		Timestamp: models.NewTimestamp(),
	}
	ms.chat.Append(msg)
	return msg
}

// React sets username's reaction on a chat message, one emoji per user per
// message, last write wins. Returns false when the message does not exist.
func (ms *MessagingService) React(messageID, username, emoji string) bool {
	found := false
	ms.chat.Update(func(items []models.ChatMessage) []models.ChatMessage {
		for i := range items {
			if items[i].ID != messageID {
				continue
			}
			if items[i].Reactions == nil {
				items[i].Reactions = make(map[string]string)
			}
			items[i].Reactions[username] = emoji
			found = true
			break
		}
		return items
	})
	return found
}
