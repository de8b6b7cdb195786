package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"goldbot/internal/feature/quotes/domain/entity"
	"goldbot/internal/feature/quotes/usecase"
	"goldbot/internal/platform/externalapi/twelvedata/dto"
)

// unknownErrorMessage is the fallback when the provider fails without a message field.
const unknownErrorMessage = "Unknown error"

// TwelveDataMarket はTwelve Data外部APIからXAU/USDの時系列データを取得する
// MarketRepository実装です。
type TwelveDataMarket struct {
	cfg    Config
	client *http.Client
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	return &TwelveDataMarket{cfg: cfg, client: client}
}

// GetTimeSeries はTwelve Data APIから時系列データを取得し、古い順に並べ替えた
// entity.Candleのスライスとして返します。1回の呼び出しにつきHTTPリクエストは
// 1回のみで、リトライやキャッシュは行いません。
//
// APIは新しい順で返すため、ここで反転して古い順（昇順）にします。この並び順は
// フォーマッタが依存する契約です。価格フィールドはAPIの文字列表現のまま保持します。
func (t *TwelveDataMarket) GetTimeSeries(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error) {
	q := url.Values{}
	// クエリパラメータを追加（銘柄は設定で固定）
	q.Set("symbol", t.cfg.Symbol)
	q.Set("interval", interval)
	q.Set("outputsize", strconv.Itoa(outputsize))
	q.Set("apikey", t.cfg.APIKey)

	// URLを生成
	u := fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// JSONレスポンスをDTOにデコード
	var body dto.TimeSeriesResponse
	decodeErr := json.NewDecoder(res.Body).Decode(&body)

	// プロバイダはエラーをHTTPステータス付きで返すことがある（401や429など）。
	// その場合も本文のmessageを優先し、ユーザーへそのまま見せる。
	if res.StatusCode >= 400 {
		if decodeErr == nil && body.Message != "" {
			return nil, &entity.ProviderError{Message: body.Message}
		}
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	// "values"が無いレスポンスはプロバイダ側のエラー（レートリミット、認証失敗など）
	if body.Values == nil || body.Status == "error" {
		msg := body.Message
		if msg == "" {
			msg = unknownErrorMessage
		}
		return nil, &entity.ProviderError{Message: msg}
	}

	candles := make([]entity.Candle, 0, len(body.Values))
	// 新しい順 → 古い順に反転しながら変換
	for i := len(body.Values) - 1; i >= 0; i-- {
		v := body.Values[i]

		// タイムスタンプをパース（オフセットの無い値はUTCとして扱う）
		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse("2006-01-02", v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}

		// 出来高はスポット金価格では欠落することがある
		vol := v.Volume
		if vol == "" {
			vol = entity.VolumeUnavailable
		}

		candles = append(candles, entity.Candle{
			Time:   tm,
			Open:   v.Open,
			High:   v.High,
			Low:    v.Low,
			Close:  v.Close,
			Volume: vol,
		})
	}
	return candles, nil
}
