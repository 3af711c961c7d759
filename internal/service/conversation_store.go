package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConversationStore keeps chat histories keyed by conversation id.
// A missing conversation reads as an empty history.
type ConversationStore interface {
	Get(ctx context.Context, id string) ([]Message, error)
	Set(ctx context.Context, id string, messages []Message, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

const conversationKeyPrefix = "chat:conversation:"

// RedisConversationStore stores each history as a JSON value with a TTL.
type RedisConversationStore struct {
	redis *redis.Client
}

func NewRedisConversationStore(client *redis.Client) *RedisConversationStore {
	return &RedisConversationStore{redis: client}
}

func (s *RedisConversationStore) key(id string) string {
	return conversationKeyPrefix + id
}

func (s *RedisConversationStore) Get(ctx context.Context, id string) ([]Message, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation from Redis: %w", err)
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return messages, nil
}

func (s *RedisConversationStore) Set(ctx context.Context, id string, messages []Message, ttl time.Duration) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation to Redis: %w", err)
	}
	return nil
}

func (s *RedisConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete conversation from Redis: %w", err)
	}
	return nil
}

// Clear removes every stored conversation, scanning in batches.
func (s *RedisConversationStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.redis.Scan(ctx, cursor, conversationKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan conversations: %w", err)
		}
		if len(keys) > 0 {
			if err := s.redis.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete conversations: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

type memoryEntry struct {
	messages  []Message
	expiresAt time.Time
}

// MemoryConversationStore is a process-local store with per-entry expiry,
// used when Redis is not available. It does not share state across instances.
type MemoryConversationStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryConversationStore) Get(_ context.Context, id string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return nil, nil
	}
	return append([]Message(nil), entry.messages...), nil
}

func (s *MemoryConversationStore) Set(_ context.Context, id string, messages []Message, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{messages: append([]Message(nil), messages...)}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.entries[id] = entry
	s.evictExpired()
	return nil
}

func (s *MemoryConversationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryConversationStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]memoryEntry)
	return nil
}

// evictExpired must be called with mu held.
func (s *MemoryConversationStore) evictExpired() {
	now := s.now()
	for id, entry := range s.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
