package luna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/llm"
)

// ConversationTurn records a single exchange in a Luna chat.
type ConversationTurn struct {
	Role    string // "User" or "Luna"
	Content string
}

// Conversation holds multi-turn chat state. The portfolio context is
// captured once at the start and reused for every turn.
type Conversation struct {
	Turns   []ConversationTurn
	Context string
}

// ChatService runs a conversation with Luna grounded in the couple's
// portfolio.
type ChatService interface {
	// Start begins a conversation with the first user message.
	Start(ctx context.Context, req contract.ChatRequest) (*Conversation, *contract.ChatResponse, error)

	// NextTurn continues an existing conversation.
	NextTurn(ctx context.Context, conv *Conversation, message string) (*contract.ChatResponse, error)
}

type chatService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewChatService creates a ChatService backed by an LLM client.
func NewChatService(client llm.LLMClient, observer llm.Observer) ChatService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &chatService{client: client, observer: observer}
}

func (s *chatService) Start(ctx context.Context, req contract.ChatRequest) (*Conversation, *contract.ChatResponse, error) {
	conv := &Conversation{Context: req.Context}

	resp, err := s.reply(ctx, conv, req.Message)
	if err != nil {
		return nil, nil, err
	}

	conv.Turns = append(conv.Turns,
		ConversationTurn{Role: "User", Content: req.Message},
		ConversationTurn{Role: "Luna", Content: resp.Reply},
	)
	return conv, resp, nil
}

func (s *chatService) NextTurn(ctx context.Context, conv *Conversation, message string) (*contract.ChatResponse, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}

	resp, err := s.reply(ctx, conv, message)
	if err != nil {
		return nil, err
	}

	conv.Turns = append(conv.Turns,
		ConversationTurn{Role: "User", Content: message},
		ConversationTurn{Role: "Luna", Content: resp.Reply},
	)
	return resp, nil
}

func (s *chatService) reply(ctx context.Context, conv *Conversation, message string) (*contract.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("chat message is empty")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatPrompt(conv, message),
	})
	if err != nil {
		return nil, fmt.Errorf("llm chat failed: %w", err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return nil, fmt.Errorf("%w: empty chat reply", llm.ErrInvalidOutput)
	}

	return &contract.ChatResponse{
		GeneratedAt: time.Now().UTC(),
		Reply:       reply,
	}, nil
}

func buildChatPrompt(conv *Conversation, message string) string {
	var b strings.Builder

	b.WriteString("## Portfolio\n")
	if strings.TrimSpace(conv.Context) == "" {
		b.WriteString("(no dreams yet)\n")
	} else {
		b.WriteString(conv.Context)
		b.WriteString("\n")
	}

	if len(conv.Turns) > 0 {
		b.WriteString("\n## Conversation so far\n")
		for _, turn := range conv.Turns {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n## Latest message\n")
	b.WriteString(message)

	return b.String()
}
