package ws_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/valueobject"
	"github.com/suhailre/suhail/internal/presentation/ws"
)

// recordingCompleter echoes the last user message and records how many
// messages each call carried.
type recordingCompleter struct {
	mu     sync.Mutex
	sizes  []int
	failOn string
}

func (c *recordingCompleter) Complete(_ context.Context, msgs []port.ChatMessage) port.ChatResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sizes = append(c.sizes, len(msgs))
	last := msgs[len(msgs)-1].Content
	if last == c.failOn {
		return port.ChatResult{Outcome: port.ChatTimeout, Err: errors.New("slow")}
	}
	return port.ChatResult{Outcome: port.ChatOK, Text: "echo: " + last}
}

func (c *recordingCompleter) callSizes() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.sizes...)
}

func newSocket(t *testing.T, completer port.ChatCompleter) *websocket.Conn {
	t.Helper()
	return newSocketWithHistory(t, completer, 0)
}

func newSocketWithHistory(t *testing.T, completer port.ChatCompleter, historyLimit int) *websocket.Conn {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	chat := usecase.NewChatUseCase(completer, nil, nil, logger, historyLimit, "")

	mux := http.NewServeMux()
	ws.NewChatHandler(chat, logger).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestChatHandler_Conversation(t *testing.T) {
	completer := &recordingCompleter{}
	conn := newSocket(t, completer)

	var welcome ws.Frame
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, "welcome", welcome.Type)
	assert.Equal(t, valueobject.LabelChatWelcome.Message(), welcome.Message)
	require.NotEmpty(t, welcome.SessionID)

	for _, msg := range []string{"first", "second"} {
		require.NoError(t, conn.WriteJSON(ws.Frame{Message: msg}))
		var reply ws.Frame
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "reply", reply.Type)
		assert.Equal(t, "echo: "+msg, reply.Message)
		assert.Equal(t, welcome.SessionID, reply.SessionID)
		assert.False(t, reply.Fallback)
	}

	// system + user, then system + two history turns + user
	assert.Equal(t, []int{2, 4}, completer.callSizes())
}

func TestChatHandler_HistoryLimit(t *testing.T) {
	completer := &recordingCompleter{}
	conn := newSocketWithHistory(t, completer, 2)

	var welcome ws.Frame
	require.NoError(t, conn.ReadJSON(&welcome))

	for _, msg := range []string{"one", "two", "three", "four"} {
		require.NoError(t, conn.WriteJSON(ws.Frame{Message: msg}))
		var reply ws.Frame
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "echo: "+msg, reply.Message)
	}

	assert.Equal(t, []int{2, 4, 4, 4}, completer.callSizes())
}

func TestChatHandler_FallbackAndErrors(t *testing.T) {
	completer := &recordingCompleter{failOn: "timeout please"}
	conn := newSocket(t, completer)

	var welcome ws.Frame
	require.NoError(t, conn.ReadJSON(&welcome))

	require.NoError(t, conn.WriteJSON(ws.Frame{Message: "   "}))
	var errFrame ws.Frame
	require.NoError(t, conn.ReadJSON(&errFrame))
	assert.Equal(t, "error", errFrame.Type)

	require.NoError(t, conn.WriteJSON(ws.Frame{Message: "timeout please"}))
	var fallback ws.Frame
	require.NoError(t, conn.ReadJSON(&fallback))
	assert.Equal(t, "reply", fallback.Type)
	assert.True(t, fallback.Fallback)
	assert.Equal(t, string(port.ChatTimeout), fallback.Outcome)
	assert.Equal(t, valueobject.LabelChatFallback.Message(), fallback.Message)

	// failed turns are not remembered
	require.NoError(t, conn.WriteJSON(ws.Frame{Message: "again"}))
	var reply ws.Frame
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "echo: again", reply.Message)
	assert.Equal(t, []int{2, 2}, completer.callSizes())
}

func TestChatHandler_Unconfigured(t *testing.T) {
	mux := http.NewServeMux()
	ws.NewChatHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
