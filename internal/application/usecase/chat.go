package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/suhailre/suhail/internal/application/dto"
	"github.com/suhailre/suhail/internal/domain/event"
	"github.com/suhailre/suhail/internal/domain/port"
	"github.com/suhailre/suhail/internal/domain/service"
	"github.com/suhailre/suhail/internal/domain/valueobject"
)

// DefaultSystemPrompt frames every completion.
const DefaultSystemPrompt = "You are Suhail, an AI assistant specialized in Saudi Arabian real estate. " +
	"You provide detailed information about properties, neighborhoods, and environmental factors. " +
	"Always respond in both Arabic (first) and English (second). Be helpful, detailed, and concise. " +
	"Include real estate expertise in your answers about the Saudi market, particularly for Riyadh. " +
	"Provide balanced views of properties and neighborhoods."

// DefaultHistoryLimit is the number of prior turns forwarded with a message.
const DefaultHistoryLimit = 10

// ChatUseCase forwards a user message to the completion API and returns the
// reply, or the bilingual fallback when the call fails.
type ChatUseCase struct {
	completer    port.ChatCompleter
	publisher    port.EventPublisher
	metrics      *Instruments
	logger       *slog.Logger
	systemPrompt string
	historyLimit int
}

// NewChatUseCase wires dependencies. A non-positive historyLimit uses
// DefaultHistoryLimit and an empty systemPrompt uses DefaultSystemPrompt.
func NewChatUseCase(
	completer port.ChatCompleter,
	publisher port.EventPublisher,
	metrics *Instruments,
	logger *slog.Logger,
	historyLimit int,
	systemPrompt string,
) *ChatUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &ChatUseCase{
		completer:    completer,
		publisher:    publisher,
		metrics:      metrics,
		logger:       loggerOrDefault(logger),
		systemPrompt: systemPrompt,
		historyLimit: historyLimit,
	}
}

// HistoryLimit is the number of prior turns forwarded with each message.
func (uc *ChatUseCase) HistoryLimit() int { return uc.historyLimit }

// Welcome returns the greeting shown when a conversation opens.
func (uc *ChatUseCase) Welcome() string {
	return valueobject.LabelChatWelcome.Message()
}

// Execute sends req.Message with the tail of req.History. A failed
// completion is not an error: the response carries the fallback text and
// the failure outcome.
func (uc *ChatUseCase) Execute(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return dto.ChatResponse{}, fmt.Errorf("%w: message is required", service.ErrInvalidInput)
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history := uc.trimHistory(req.History)
	messages := make([]port.ChatMessage, 0, len(history)+2)
	messages = append(messages, port.ChatMessage{Role: port.RoleSystem, Content: uc.systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, port.ChatMessage{Role: port.RoleUser, Content: req.Message})

	result := uc.completer.Complete(ctx, messages)
	uc.metrics.chatted(ctx, result.Outcome)

	resp := dto.ChatResponse{SessionID: sessionID, Outcome: string(result.Outcome)}
	if result.Outcome == port.ChatOK {
		resp.Reply = result.Text
	} else {
		uc.logger.WarnContext(ctx, "chat completion failed",
			"session_id", sessionID,
			"outcome", result.Outcome,
			"status", result.StatusCode,
			"error", result.Err,
		)
		resp.Reply = valueobject.LabelChatFallback.Message()
		resp.Fallback = true
	}

	publish(ctx, uc.publisher, uc.logger,
		event.NewChatAnswered(sessionID, resp.Outcome, len(history), resp.Fallback))
	return resp, nil
}

// trimHistory keeps the last historyLimit user and assistant turns.
func (uc *ChatUseCase) trimHistory(turns []dto.ChatTurn) []port.ChatMessage {
	kept := make([]port.ChatMessage, 0, len(turns))
	for _, t := range turns {
		role := port.ChatRole(strings.ToLower(strings.TrimSpace(t.Role)))
		if role != port.RoleUser && role != port.RoleAssistant {
			continue
		}
		kept = append(kept, port.ChatMessage{Role: role, Content: t.Content})
	}
	if len(kept) > uc.historyLimit {
		kept = kept[len(kept)-uc.historyLimit:]
	}
	return kept
}
