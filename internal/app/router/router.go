// Package router は運用系HTTPエンドポイントのルータを構築します。
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"goldbot/internal/platform/http/handler"
)

// NewRouter はヘルスチェック用のルータを生成します。ボットの本体はTelegramの
// ロングポーリングで動くため、公開するのは死活監視エンドポイントのみです。
func NewRouter(started time.Time) *gin.Engine {
	r := gin.Default()

	h := handler.NewHealth(started)
	// 導通確認用
	r.GET("/healthz", h)
	r.HEAD("/healthz", h)
	r.OPTIONS("/healthz", h)

	return r
}
