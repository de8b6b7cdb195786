// Package telegram はTelegramの更新を会話ユースケースへ振り分けるトランスポート層です。
package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldbot/internal/feature/chat/usecase"
)

// pollTimeoutSeconds はロングポーリング1回あたりの待機秒数です。
const pollTimeoutSeconds = 30

// ConversationUsecase は会話コントローラのインターフェイスを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ConversationUsecase interface {
	ShowMenu(ctx context.Context, chatID int64) error
	HandleCallback(ctx context.Context, q usecase.CallbackQuery) error
}

// UpdateHandler は受信した更新をコマンドとボタンタップに振り分けます。
type UpdateHandler struct {
	uc ConversationUsecase
}

// NewUpdateHandler は指定されたusecaseでUpdateHandlerの新しいインスタンスを生成します。
func NewUpdateHandler(uc ConversationUsecase) *UpdateHandler {
	return &UpdateHandler{uc: uc}
}

// HandleUpdate は更新を1件処理します。個々の更新の失敗はログに残すだけで、
// 更新ループ全体を止めることはありません。
func (h *UpdateHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while handling update", "panic", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		if cq.Message == nil {
			slog.Warn("callback query without message", "callback_id", cq.ID)
			return
		}
		q := usecase.CallbackQuery{
			ID:        cq.ID,
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			Data:      cq.Data,
		}
		if err := h.uc.HandleCallback(ctx, q); err != nil {
			slog.Error("failed to handle callback", "chat_id", q.ChatID, "error", err)
		}

	case update.Message != nil && update.Message.IsCommand():
		switch update.Message.Command() {
		case "xau", "start":
			if err := h.uc.ShowMenu(ctx, update.Message.Chat.ID); err != nil {
				slog.Error("failed to show timeframe menu", "chat_id", update.Message.Chat.ID, "error", err)
			}
		}
	}
}

// RunPolling はctxがキャンセルされるまで更新チャネルを消費します。
// 更新ごとにゴルーチンを起こすため、外部APIが遅い1件が他の会話を塞ぎません。
func (h *UpdateHandler) RunPolling(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go h.HandleUpdate(ctx, update)
		}
	}
}
