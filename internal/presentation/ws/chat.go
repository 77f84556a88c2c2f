// Package ws serves the interactive chat over a websocket.
package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/application/usecase"
	"github.com/suhailre/suhail/internal/domain/service"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 << 10
)

// Frame is the JSON message exchanged on the socket. Clients send Message;
// the server answers with Type "welcome", "reply" or "error".
type Frame struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Fallback  bool   `json:"fallback,omitempty"`
}

// ChatHandler upgrades requests and runs one conversation per connection.
// History is held per connection and is lost when it closes.
type ChatHandler struct {
	chat     *usecase.ChatUseCase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewChatHandler creates the handler. A nil chat use case answers every
// upgrade with 503.
func NewChatHandler(chat *usecase.ChatUseCase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// RegisterRoutes mounts the socket on mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /ws/chat", h)
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.chat == nil {
		http.Error(w, "chat is not configured", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	session := uuid.NewString()
	h.logger.Info("chat session opened", "session_id", session, "remote", r.RemoteAddr)

	if err := h.write(conn, Frame{Type: "welcome", SessionID: session, Message: h.chat.Welcome()}); err != nil {
		return
	}

	var history []dto.ChatTurn
	exchanges := 0
	for {
		var in Frame
		if err := conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("chat read ended", "session_id", session, "error", err)
			}
			break
		}

		resp, err := h.chat.Execute(r.Context(), dto.ChatRequest{
			SessionID: session,
			Message:   in.Message,
			History:   history,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			msg := "internal error"
			if errors.Is(err, service.ErrInvalidInput) {
				msg = err.Error()
			}
			if werr := h.write(conn, Frame{Type: "error", SessionID: session, Message: msg}); werr != nil {
				break
			}
			continue
		}

		if !resp.Fallback {
			exchanges++
			history = keepRecent(history, h.chat.HistoryLimit(),
				dto.ChatTurn{Role: "user", Content: in.Message},
				dto.ChatTurn{Role: "assistant", Content: resp.Reply},
			)
		}

		out := Frame{Type: "reply", SessionID: session, Message: resp.Reply, Outcome: resp.Outcome, Fallback: resp.Fallback}
		if err := h.write(conn, out); err != nil {
			break
		}
	}
	h.logger.Info("chat session closed", "session_id", session, "exchanges", exchanges)
}

// keepRecent appends turns and drops the oldest entries beyond limit, so a
// long conversation holds no more than the use case will forward.
func keepRecent(history []dto.ChatTurn, limit int, turns ...dto.ChatTurn) []dto.ChatTurn {
	history = append(history, turns...)
	if over := len(history) - limit; over > 0 {
		history = slices.Delete(history, 0, over)
	}
	return history
}

func (h *ChatHandler) write(conn *websocket.Conn, f Frame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(f); err != nil {
		h.logger.Debug("chat write failed", "session_id", f.SessionID, "error", err)
		return err
	}
	return nil
}
