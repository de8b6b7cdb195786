// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewHealth は /healthz エンドポイントのハンドラーを生成します。ボットには
// 受信APIが無いため、このエンドポイントはオーケストレーションの死活監視用です。
func NewHealth(started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"uptime": time.Since(started).Round(time.Second).String(),
			})
		}
	}
}
