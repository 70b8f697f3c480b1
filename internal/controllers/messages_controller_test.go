package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/models"
	"socialnino/internal/services"
	"socialnino/internal/testutil"
)

func newMessagesFixture(t *testing.T) (*MessagesController, services.MessagingServiceInterface, *testutil.MockCache) {
	t.Helper()
	store, reg := newTestStore(t)
	messaging := services.NewMessagingService(store, reg)
	cache := testutil.NewMockCache()
	return NewMessagesController(&testutil.MockLogger{}, messaging, cache), messaging, cache
}

func TestSendMessage_InvalidatesBothConversationCaches(t *testing.T) {
	mc, _, cache := newMessagesFixture(t)
	cache.Set("conversations:nino", []byte("[]"))
	cache.Set("conversations:ana", []byte("[]"))

	body := `{"receiver":"ana","content":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/thread?user=nino", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mc.SendMessage(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	_, ok := cache.Get("conversations:nino")
	assert.False(t, ok)
	_, ok = cache.Get("conversations:ana")
	assert.False(t, ok)
}

func TestGetConversations(t *testing.T) {
	mc, messaging, _ := newMessagesFixture(t)
	messaging.Send("ana", "nino", "oi", "")

	req := httptest.NewRequest(http.MethodGet, "/conversations?user=nino", nil)
	rr := httptest.NewRecorder()
	mc.GetConversations(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var convs []models.ConversationSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &convs))
	require.Len(t, convs, 1)
	assert.True(t, convs[0].Unread)
}

func TestGetThread(t *testing.T) {
	mc, messaging, _ := newMessagesFixture(t)
	messaging.Send("nino", "ana", "oi", "")
	messaging.Send("nino", "bob", "hey", "")

	req := httptest.NewRequest(http.MethodGet, "/thread?user=nino&with=ana", nil)
	rr := httptest.NewRecorder()
	mc.GetThread(rr, req)

	var thread []models.DirectMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &thread))
	require.Len(t, thread, 1)
	assert.Equal(t, "oi", thread[0].Content)
}

func TestMarkThreadRead(t *testing.T) {
	mc, messaging, cache := newMessagesFixture(t)
	messaging.Send("ana", "nino", "oi", "")
	cache.Set("conversations:nino", []byte("[]"))

	body := `{"counterpart":"ana"}`
	req := httptest.NewRequest(http.MethodPost, "/thread/read?user=nino", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mc.MarkThreadRead(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, ok := cache.Get("conversations:nino")
	assert.False(t, ok)

	convs := messaging.Conversations("nino")
	require.Len(t, convs, 1)
	assert.False(t, convs[0].Unread)
}

func TestSendChatAndReact(t *testing.T) {
	mc, messaging, _ := newMessagesFixture(t)

	body := `{"avatar":"nino.png","content":"hello all"}`
	req := httptest.NewRequest(http.MethodPost, "/chat?user=nino", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mc.SendChat(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))

	reactBody := `{"messageId":"` + msg.ID + `","emoji":"🔥"}`
	req = httptest.NewRequest(http.MethodPost, "/chat/react?user=ana", strings.NewReader(reactBody))
	rr = httptest.NewRecorder()
	mc.React(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	chat := messaging.ChatMessages()
	require.Len(t, chat, 1)
	assert.Equal(t, "🔥", chat[0].Reactions["ana"])
}

func TestReact_UnknownMessage(t *testing.T) {
	mc, _, _ := newMessagesFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/chat/react?user=ana", strings.NewReader(`{"messageId":"missing","emoji":"🔥"}`))
	rr := httptest.NewRecorder()
	mc.React(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
