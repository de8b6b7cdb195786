package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbot/internal/feature/chat/usecase"
)

func TestChatSessionMemory_SaveAndFind(t *testing.T) {
	t.Parallel()

	repo := NewChatSessionMemory()
	ctx := context.Background()

	want := testSession(42)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Find(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want.OutputSize, got.OutputSize)

	// The store keeps its own copy; mutating the result must not leak back
	got.OutputSize = 999
	again, err := repo.Find(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want.OutputSize, again.OutputSize)
}

func TestChatSessionMemory_FindMissing(t *testing.T) {
	t.Parallel()

	repo := NewChatSessionMemory()

	_, err := repo.Find(context.Background(), 1)
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestChatSessionMemory_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	repo := NewChatSessionMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			_ = repo.Save(ctx, testSession(chatID))
			_, _ = repo.Find(ctx, chatID)
		}(int64(i))
	}
	wg.Wait()

	got, err := repo.Find(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ChatID)
}
