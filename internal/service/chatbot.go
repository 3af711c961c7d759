package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultConversationID is used when a chat request names no conversation.
const DefaultConversationID = "default"

// MaxHistoryMessages bounds a stored history: the system prompt plus the
// most recent 19 turns.
const MaxHistoryMessages = 20

// ChatbotGreeting opens every new conversation.
const ChatbotGreeting = "Hello! I'm LankaNutri Advisor 🍽️\n\nI help you understand nutrition in Sri Lankan foods, create meal plans, and build healthier habits.\n\nHow can I support your diet today?"

// ChatbotOptions configures the completion parameters and history lifetime.
type ChatbotOptions struct {
	Temperature float64
	MaxTokens   int
	HistoryTTL  time.Duration
	MaxHistory  int
}

// DefaultChatbotOptions returns temperature 0.7, 1024 tokens, 24h history.
func DefaultChatbotOptions() ChatbotOptions {
	return ChatbotOptions{
		Temperature: 0.7,
		MaxTokens:   1024,
		HistoryTTL:  24 * time.Hour,
		MaxHistory:  MaxHistoryMessages,
	}
}

// ChatReply is the assistant answer returned to the client.
type ChatReply struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

// ChatbotService proxies a nutrition advisor conversation to a language model.
type ChatbotService struct {
	provider ChatCompletionProvider
	store    ConversationStore
	opts     ChatbotOptions

	mu  sync.Mutex
	rng *rand.Rand
}

func NewChatbotService(provider ChatCompletionProvider, store ConversationStore, opts ChatbotOptions) *ChatbotService {
	def := DefaultChatbotOptions()
	if opts.MaxHistory <= 1 {
		opts.MaxHistory = def.MaxHistory
	}
	if opts.HistoryTTL <= 0 {
		opts.HistoryTTL = def.HistoryTTL
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = def.MaxTokens
	}
	return &ChatbotService{
		provider: provider,
		store:    store,
		opts:     opts,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Available reports whether a chat provider is configured.
func (s *ChatbotService) Available() bool {
	return IsAvailable(s.provider)
}

// NewConversation starts a history holding only the system prompt.
func (s *ChatbotService) NewConversation(ctx context.Context) (*ChatReply, error) {
	if !s.Available() {
		return nil, fmt.Errorf("chatbot: %w", ErrLLMUnavailable)
	}
	id := s.newConversationID()
	if err := s.store.Set(ctx, id, []Message{systemMessage()}, s.opts.HistoryTTL); err != nil {
		return nil, err
	}
	return &ChatReply{Message: ChatbotGreeting, ConversationID: id}, nil
}

// Chat appends message to the conversation, asks the model and stores the
// answer. The history is capped before the call and again before storing.
func (s *ChatbotService) Chat(ctx context.Context, conversationID, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, NewValidationError("message", "Message is required")
	}
	if !s.Available() {
		return nil, fmt.Errorf("chatbot: %w", ErrLLMUnavailable)
	}
	if conversationID == "" {
		conversationID = DefaultConversationID
	}

	history, err := s.store.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		history = []Message{systemMessage()}
	}
	history = CapHistory(append(history, Message{Role: RoleUser, Content: message}), s.opts.MaxHistory)

	completion, err := s.provider.Complete(ctx, CompletionRequest{
		Messages:    history,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		logrus.WithError(err).WithField("conversation_id", conversationID).Error("chat completion failed")
		return nil, err
	}

	history = CapHistory(append(history, Message{Role: RoleAssistant, Content: completion.Content}), s.opts.MaxHistory)
	if err := s.store.Set(ctx, conversationID, history, s.opts.HistoryTTL); err != nil {
		return nil, err
	}

	return &ChatReply{Message: completion.Content, ConversationID: conversationID}, nil
}

// Clear deletes one conversation, or all of them when id is empty.
func (s *ChatbotService) Clear(ctx context.Context, id string) error {
	if id == "" {
		return s.store.Clear(ctx)
	}
	return s.store.Delete(ctx, id)
}

// CapHistory keeps the first message (the system prompt) and the most recent
// max-1 messages when the history is longer than max.
func CapHistory(history []Message, max int) []Message {
	if max <= 1 || len(history) <= max {
		return history
	}
	capped := make([]Message, 0, max)
	capped = append(capped, history[0])
	return append(capped, history[len(history)-(max-1):]...)
}

func (s *ChatbotService) newConversationID() string {
	s.mu.Lock()
	suffix := strconv.FormatInt(s.rng.Int63n(1<<45), 36)
	s.mu.Unlock()
	for len(suffix) < 9 {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("conv_%d_%s", time.Now().UnixMilli(), suffix[len(suffix)-9:])
}

func systemMessage() Message {
	return Message{Role: RoleSystem, Content: ChatbotSystemPrompt}
}
