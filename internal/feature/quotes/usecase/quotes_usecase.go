// Package usecase はXAU/USD時系列データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"goldbot/internal/feature/quotes/domain/entity"
)

// MarketRepository は外部APIからローソク足データを取得するリポジトリのインターフェイスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetTimeSeries は指定された時間足と件数のローソク足を古い順（昇順）で返します。
	GetTimeSeries(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error)
}

// quotesUsecase はローソク足データ取得のユースケースを定義します。
type quotesUsecase struct {
	market MarketRepository
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(market MarketRepository) *quotesUsecase {
	return &quotesUsecase{market: market}
}

// GetSeries は指定された時間足と件数のローソク足データを取得します。
// outputsizeはカタログ由来の正の整数であることが前提で、0以下は外部APIを
// 呼び出さずにエラーを返します。
func (qu *quotesUsecase) GetSeries(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error) {
	if outputsize <= 0 {
		return nil, fmt.Errorf("outputsize must be positive, got %d", outputsize)
	}
	return qu.market.GetTimeSeries(ctx, interval, outputsize)
}
