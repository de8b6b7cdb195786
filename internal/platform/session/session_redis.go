// Package session provides chat-session stores backed by Redis or memory.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"goldbot/internal/feature/chat/domain/entity"
	"goldbot/internal/feature/chat/usecase"
)

// DefaultTTL bounds how long a remembered timeframe selection survives.
// Sessions are pure convenience state, so letting them expire is harmless.
const DefaultTTL = 24 * time.Hour

// ChatSessionRedis implements usecase.SessionRepository using Redis.
type ChatSessionRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.SessionRepository = (*ChatSessionRedis)(nil)

// NewChatSessionRedis creates a new ChatSessionRedis instance. A non-positive
// ttl falls back to DefaultTTL; an empty prefix falls back to "chat_session".
func NewChatSessionRedis(client *redis.Client, prefix string, ttl time.Duration) *ChatSessionRedis {
	if prefix == "" {
		prefix = "chat_session"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ChatSessionRedis{client: client, prefix: prefix, ttl: ttl}
}

// sessionKey returns the Redis key for a conversation.
func (r *ChatSessionRedis) sessionKey(chatID int64) string {
	return fmt.Sprintf("%s:%d", r.prefix, chatID)
}

// Save persists the session, refreshing its TTL.
func (r *ChatSessionRedis) Save(ctx context.Context, s *entity.ChatSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal chat session: %w", err)
	}
	return r.client.Set(ctx, r.sessionKey(s.ChatID), data, r.ttl).Err()
}

// Find retrieves the session for a conversation.
func (r *ChatSessionRedis) Find(ctx context.Context, chatID int64) (*entity.ChatSession, error) {
	data, err := r.client.Get(ctx, r.sessionKey(chatID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var s entity.ChatSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat session: %w", err)
	}
	return &s, nil
}
