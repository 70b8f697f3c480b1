package controllers

import (
	"net/http"

	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type MessagesController struct {
	logger    providers.Logger
	messaging services.MessagingServiceInterface
	cache     providers.CacheProviderInterface
}

func NewMessagesController(logger providers.Logger, messaging services.MessagingServiceInterface, cache providers.CacheProviderInterface) *MessagesController {
	return &MessagesController{
		logger:    logger,
		messaging: messaging,
		cache:     cache,
	}
}

func conversationsCacheKey(user string) string {
	return "conversations:" + user
}

func (mc *MessagesController) GetConversations(w http.ResponseWriter, r *http.Request) {
	user := providers.CurrentUser(r)
	serveFromCacheOrCompute(w, mc.cache, conversationsCacheKey(user), func() (any, error) {
		return mc.messaging.Conversations(user), nil
	})
}

func (mc *MessagesController) GetThread(w http.ResponseWriter, r *http.Request) {
	user := providers.CurrentUser(r)
	counterpart := r.URL.Query().Get("with")
	writeJSON(w, http.StatusOK, mc.messaging.Thread(user, counterpart))
}

type sendMessageRequest struct {
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

func (mc *MessagesController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var payload sendMessageRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	msg := mc.messaging.Send(user, payload.Receiver, payload.Content, payload.Type)
	mc.cache.Del(conversationsCacheKey(user))
	mc.cache.Del(conversationsCacheKey(payload.Receiver))

	writeJSON(w, http.StatusCreated, msg)
}

type markReadRequest struct {
	Counterpart string `json:"counterpart"`
}

func (mc *MessagesController) MarkThreadRead(w http.ResponseWriter, r *http.Request) {
	var payload markReadRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	mc.messaging.MarkThreadRead(user, payload.Counterpart)
	mc.cache.Del(conversationsCacheKey(user))

	w.WriteHeader(http.StatusNoContent)
}

func (mc *MessagesController) GetChat(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mc.messaging.ChatMessages())
}

type sendChatRequest struct {
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (mc *MessagesController) SendChat(w http.ResponseWriter, r *http.Request) {
	var payload sendChatRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)
	writeJSON(w, http.StatusCreated, mc.messaging.SendChat(user, payload.Avatar, payload.Content, payload.Type))
}

type reactRequest struct {
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
}

func (mc *MessagesController) React(w http.ResponseWriter, r *http.Request) {
	var payload reactRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	user := providers.CurrentUser(r)

	if !mc.messaging.React(payload.MessageID, user, payload.Emoji) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
