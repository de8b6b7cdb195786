// Package http provides the shared outbound HTTP client.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はTwelve Data呼び出し用のHTTPクライアントを作成します。
// http.DefaultClientはタイムアウトを持たないため使用しません。
//
// ボタン1タップにつき相場データの取得は1リクエストなので、
// コネクションプールは控えめに保ち、接続先は実質1ホストのみとします。
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}
