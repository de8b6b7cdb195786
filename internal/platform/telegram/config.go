// Package telegram wraps the Telegram Bot API client.
package telegram

import "os"

// Config holds configuration for the Telegram bot client.
type Config struct {
	BotToken string // bot credential issued by BotFather
	Debug    bool   // enables the library's request/response logging
}

// LoadConfig loads Telegram configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Debug:    os.Getenv("TELEGRAM_DEBUG") == "1",
	}
}
