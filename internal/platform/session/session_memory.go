package session

import (
	"context"
	"sync"

	"goldbot/internal/feature/chat/domain/entity"
	"goldbot/internal/feature/chat/usecase"
)

// ChatSessionMemory implements usecase.SessionRepository with a mutex-guarded
// map. It is the fallback when Redis is unavailable.
//
// The map has no eviction: one entry per conversation that ever selected a
// timeframe. At bot scale this is acceptable, but it grows without bound for
// the lifetime of the process.
type ChatSessionMemory struct {
	mu    sync.RWMutex
	store map[int64]entity.ChatSession
}

var _ usecase.SessionRepository = (*ChatSessionMemory)(nil)

// NewChatSessionMemory creates an empty in-memory session store.
func NewChatSessionMemory() *ChatSessionMemory {
	return &ChatSessionMemory{store: make(map[int64]entity.ChatSession)}
}

// Save stores a copy of the session.
func (m *ChatSessionMemory) Save(ctx context.Context, s *entity.ChatSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[s.ChatID] = *s
	return nil
}

// Find retrieves the session for a conversation.
func (m *ChatSessionMemory) Find(ctx context.Context, chatID int64) (*entity.ChatSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.store[chatID]
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	out := s
	return &out, nil
}
