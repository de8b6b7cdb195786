package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"goldbot/internal/feature/chat/domain/entity"
	"goldbot/internal/feature/chat/usecase"
)

// NewBotAPI はTelegram Bot APIクライアントを生成します。トークンが不正な
// 場合はここで認証エラーになります。
func NewBotAPI(cfg Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug
	return api, nil
}

// Messenger はTelegram Bot API上でusecase.Messengerを実装します。
type Messenger struct {
	api *tgbotapi.BotAPI
}

// MessengerがMessengerインターフェースを実装していることをコンパイル時に検証します。
var _ usecase.Messenger = (*Messenger)(nil)

// NewMessenger は指定されたAPIクライアントでMessengerの新しいインスタンスを生成します。
func NewMessenger(api *tgbotapi.BotAPI) *Messenger {
	return &Messenger{api: api}
}

// SendMessage は新規メッセージを送信し、そのメッセージIDを返します。
// 注意: tgbotapiはcontextを受け取らないため、キャンセルはAPIクライアントの
// HTTPタイムアウトに委ねます。
func (m *Messenger) SendMessage(ctx context.Context, chatID int64, text string, buttons [][]entity.Button) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb, ok := inlineKeyboard(buttons); ok {
		msg.ReplyMarkup = kb
	}
	sent, err := m.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditMessage は既存メッセージの本文とインラインキーボードを差し替えます。
func (m *Messenger) EditMessage(ctx context.Context, chatID int64, messageID int, text string, buttons [][]entity.Button) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if kb, ok := inlineKeyboard(buttons); ok {
		edit.ReplyMarkup = &kb
	}
	_, err := m.api.Send(edit)
	return err
}

// AnswerCallback はボタンタップに空の確認応答を返します。
func (m *Messenger) AnswerCallback(ctx context.Context, callbackID string) error {
	_, err := m.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// inlineKeyboard は中立的なボタン行列をtgbotapiのマークアップへ変換します。
func inlineKeyboard(buttons [][]entity.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(buttons) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, r)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
