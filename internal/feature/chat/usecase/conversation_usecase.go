// Package usecase は会話コントローラのビジネスロジックを実装します。
//
// 会話は Idle → MenuShown → ResultShown(interval, label, timezone) と遷移し、
// ResultShownはタイムゾーン切り替えで再入可能です。状態自体はチャット上の
// 最後のメッセージとして残り、明示的なセッション失効はありません。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"goldbot/internal/feature/chat/domain/callback"
	"goldbot/internal/feature/chat/domain/entity"
	quotesentity "goldbot/internal/feature/quotes/domain/entity"
	"goldbot/internal/feature/quotes/render"
	"goldbot/internal/feature/quotes/timeframe"
)

// ユーザーに表示するメッセージ。
const (
	menuPrompt          = "📊 Select XAU/USD timeframe:"
	invalidTimeframeMsg = "❌ Invalid timeframe."
	fetchErrorPrefix    = "❌ Error fetching data: "
)

// Messenger はチャットプラットフォームへの送信操作を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Messenger interface {
	// SendMessage は新規メッセージを送信し、そのメッセージIDを返します。
	SendMessage(ctx context.Context, chatID int64, text string, buttons [][]entity.Button) (int, error)
	// EditMessage は既存メッセージの本文とボタンを差し替えます。buttonsがnilの
	// 場合はボタンなしになります。
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, buttons [][]entity.Button) error
	// AnswerCallback はボタンタップを確認応答し、クライアントのスピナーを止めます。
	AnswerCallback(ctx context.Context, callbackID string) error
}

// QuotesReader はローソク足データ取得ユースケースのインターフェイスです。
type QuotesReader interface {
	GetSeries(ctx context.Context, interval string, outputsize int) ([]quotesentity.Candle, error)
}

// SessionRepository は会話ごとのセッション状態の保存レイヤーを抽象化します。
type SessionRepository interface {
	Save(ctx context.Context, s *entity.ChatSession) error
	// Find はセッションが存在しない場合 ErrSessionNotFound を返します。
	Find(ctx context.Context, chatID int64) (*entity.ChatSession, error)
}

// CallbackQuery はボタンタップのトランスポート非依存な表現です。
type CallbackQuery struct {
	ID        string // 確認応答用のコールバックID
	ChatID    int64
	MessageID int    // 編集対象のメッセージ
	Data      string // ボタンのペイロード
}

// ConversationUsecase はコマンドとボタンタップを処理する会話コントローラです。
type ConversationUsecase struct {
	messenger Messenger
	quotes    QuotesReader
	sessions  SessionRepository
}

// NewConversationUsecase はConversationUsecaseの新しいインスタンスを生成します。
func NewConversationUsecase(messenger Messenger, quotes QuotesReader, sessions SessionRepository) *ConversationUsecase {
	return &ConversationUsecase{messenger: messenger, quotes: quotes, sessions: sessions}
}

// ShowMenu は全タイムフレームカタログをボタングリッドとして送信します
// （Idle → MenuShown）。
func (cu *ConversationUsecase) ShowMenu(ctx context.Context, chatID int64) error {
	_, err := cu.messenger.SendMessage(ctx, chatID, menuPrompt, menuRows())
	return err
}

// HandleCallback はボタンタップを1件処理します。ペイロードをデコードし、
// タイムフレーム選択かタイムゾーン切り替えへ振り分けます。不正なペイロードは
// 外部APIを呼び出さずにエラーメッセージへ編集します。
func (cu *ConversationUsecase) HandleCallback(ctx context.Context, q CallbackQuery) error {
	// 先に確認応答する（失敗しても処理は続ける）
	if err := cu.messenger.AnswerCallback(ctx, q.ID); err != nil {
		slog.Warn("failed to answer callback", "chat_id", q.ChatID, "error", err)
	}

	cb := callback.Decode(q.Data)
	switch cb.Kind {
	case callback.KindTimeframeSelected:
		return cu.showTimeframe(ctx, q, cb)
	case callback.KindTimezoneToggled:
		return cu.toggleTimezone(ctx, q, cb)
	default:
		return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, invalidTimeframeMsg, nil)
	}
}

// showTimeframe はタイムフレーム選択を処理します（MenuShown → ResultShown）。
// カタログで解決し、取得したデータをUTC表示で描画してトグルボタンを付けます。
func (cu *ConversationUsecase) showTimeframe(ctx context.Context, q CallbackQuery, cb callback.Callback) error {
	size, ok := timeframe.Resolve(cb.Interval, cb.Label)
	if !ok {
		return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, invalidTimeframeMsg, nil)
	}

	candles, err := cu.quotes.GetSeries(ctx, cb.Interval, size)
	if err != nil {
		return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, fetchErrorPrefix+err.Error(), nil)
	}

	// 解決済みのoutputsizeを記憶しておく（トグル時の再取得用。ベストエフォート）
	cu.saveSession(ctx, q.ChatID, cb.Interval, cb.Label, size)

	text := render.Format(candles, cb.Label, cb.Interval, render.TimezoneUTC)
	return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, text, toggleRows(cb.Interval, cb.Label))
}

// toggleTimezone はタイムゾーン切り替えを処理します（ResultShown → ResultShown）。
// 記憶したoutputsizeで再取得し、選択されたタイムゾーンで描画し直します。
// キャッシュせずに毎回取得し直すのは意図的なトレードオフです（DESIGN.md参照）。
func (cu *ConversationUsecase) toggleTimezone(ctx context.Context, q CallbackQuery, cb callback.Callback) error {
	size, ok := cu.rememberedOutputSize(ctx, q.ChatID, cb)
	if !ok {
		return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, invalidTimeframeMsg, nil)
	}

	candles, err := cu.quotes.GetSeries(ctx, cb.Interval, size)
	if err != nil {
		return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, fetchErrorPrefix+err.Error(), nil)
	}

	cu.saveSession(ctx, q.ChatID, cb.Interval, cb.Label, size)

	text := render.Format(candles, cb.Label, cb.Interval, cb.Timezone)
	return cu.messenger.EditMessage(ctx, q.ChatID, q.MessageID, text, toggleRows(cb.Interval, cb.Label))
}

// rememberedOutputSize はセッションからoutputsizeを取り出します。セッションが
// 無い場合（再起動後など）はペイロードの(interval, label)からカタログで解決し
// 直します。
func (cu *ConversationUsecase) rememberedOutputSize(ctx context.Context, chatID int64, cb callback.Callback) (int, bool) {
	s, err := cu.sessions.Find(ctx, chatID)
	if err == nil && s.Interval == cb.Interval && s.Label == cb.Label && s.OutputSize > 0 {
		return s.OutputSize, true
	}
	if err != nil && err != ErrSessionNotFound {
		slog.Warn("failed to load chat session", "chat_id", chatID, "error", err)
	}
	return timeframe.Resolve(cb.Interval, cb.Label)
}

// saveSession はセッション保存を行います。保存失敗は機能を止めずログのみ残します。
func (cu *ConversationUsecase) saveSession(ctx context.Context, chatID int64, interval, label string, size int) {
	s := &entity.ChatSession{
		ChatID:     chatID,
		Interval:   interval,
		Label:      label,
		OutputSize: size,
		UpdatedAt:  time.Now(),
	}
	if err := cu.sessions.Save(ctx, s); err != nil {
		slog.Warn("failed to save chat session", "chat_id", chatID, "error", err)
	}
}

// menuRows はカタログ全体を1ボタン1行のグリッドに展開します。
// グループ順（5-min → 15-min → 1H）はカタログの定義順です。
func menuRows() [][]entity.Button {
	var rows [][]entity.Button
	for _, g := range timeframe.Groups() {
		for _, e := range g.Entries {
			rows = append(rows, []entity.Button{{
				Text: g.Display + " " + strings.ToUpper(e.Label),
				Data: callback.TimeframeData(g.Interval, e.Label),
			}})
		}
	}
	return rows
}

// toggleRows は結果メッセージに付けるタイムゾーン切り替えボタンです。
func toggleRows(interval, label string) [][]entity.Button {
	return [][]entity.Button{{
		{Text: "Show in UTC", Data: callback.ToggleData(render.TimezoneUTC, interval, label)},
		{Text: "Show in IST", Data: callback.ToggleData(render.TimezoneIST, interval, label)},
	}}
}
