package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"goldbot/internal/app/router"
	chattransport "goldbot/internal/feature/chat/transport/telegram"
	chatusecase "goldbot/internal/feature/chat/usecase"
	quotesusecase "goldbot/internal/feature/quotes/usecase"
	"goldbot/internal/platform/externalapi/twelvedata"
	platformhttp "goldbot/internal/platform/http"
	infraredis "goldbot/internal/platform/redis"
	"goldbot/internal/platform/session"
	"goldbot/internal/platform/telegram"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	started := time.Now()

	// 設定（起動時に一度だけ読み込み、以後は読み取り専用）
	tgCfg := telegram.LoadConfig()
	if tgCfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}
	tdCfg := twelvedata.LoadConfig()
	if tdCfg.APIKey == "" {
		log.Println("[WARN] TWELVE_DATA_API_KEY is not set. Provider requests will fail with an auth error.")
	}

	// Redis（任意依存。接続できなければインメモリセッションにフォールバック）
	var sessions chatusecase.SessionRepository
	if rdb, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using in-memory chat sessions.")
		sessions = session.NewChatSessionMemory()
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		sessions = session.NewChatSessionRedis(rdb, "chat_session", session.DefaultTTL)
	}

	// Repository
	httpClient := platformhttp.NewHTTPClient(tdCfg.Timeout)
	market := twelvedata.NewTwelveDataMarket(tdCfg, httpClient)

	// Usecase
	quotesUC := quotesusecase.NewQuotesUsecase(market)

	// Telegram
	api, err := telegram.NewBotAPI(tgCfg)
	if err != nil {
		log.Fatal("failed to authenticate with Telegram: ", err)
	}
	messenger := telegram.NewMessenger(api)

	conversationUC := chatusecase.NewConversationUsecase(messenger, quotesUC, sessions)
	updateHandler := chattransport.NewUpdateHandler(conversationUC)

	// ヘルスチェック用HTTPサーバ
	addr := os.Getenv("HEALTH_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	r := router.NewRouter(started)
	go func() {
		if err := r.Run(addr); err != nil {
			slog.Error("health server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("bot is running, use /xau in Telegram", "username", api.Self.UserName)
	updateHandler.RunPolling(ctx, api)
	slog.Info("bot stopped")
}
