package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"goldbot/internal/feature/quotes/domain/entity"
	"goldbot/internal/feature/quotes/usecase"
)

// ErrProvider はモックと期待値の間で共有されるセンチネルエラーです。
var ErrProvider = errors.New("provider error")

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
type mockMarketRepository struct {
	GetTimeSeriesFunc func(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error)
	calls             int
}

func (m *mockMarketRepository) GetTimeSeries(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error) {
	m.calls++
	if m.GetTimeSeriesFunc != nil {
		return m.GetTimeSeriesFunc(ctx, interval, outputsize)
	}
	return nil, errors.New("GetTimeSeriesFunc is not implemented")
}

func TestQuotesUsecase_GetSeries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := []entity.Candle{
		{Time: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), Open: "2060.00", High: "2062.40", Low: "2059.30", Close: "2061.50", Volume: "980"},
	}

	testCases := []struct {
		name            string
		interval        string
		outputsize      int
		mockFunc        func(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error)
		expectedCandles []entity.Candle
		expectErr       bool
		expectedCalls   int
	}{
		{
			name:       "success",
			interval:   "1h",
			outputsize: 24,
			mockFunc: func(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error) {
				if interval != "1h" || outputsize != 24 {
					t.Errorf("unexpected args (%q, %d)", interval, outputsize)
				}
				return expected, nil
			},
			expectedCandles: expected,
			expectedCalls:   1,
		},
		{
			name:          "error: zero outputsize never reaches the repository",
			interval:      "5min",
			outputsize:    0,
			expectErr:     true,
			expectedCalls: 0,
		},
		{
			name:          "error: negative outputsize never reaches the repository",
			interval:      "5min",
			outputsize:    -3,
			expectErr:     true,
			expectedCalls: 0,
		},
		{
			name:       "error: repository error is propagated",
			interval:   "15min",
			outputsize: 36,
			mockFunc: func(ctx context.Context, interval string, outputsize int) ([]entity.Candle, error) {
				return nil, ErrProvider
			},
			expectErr:     true,
			expectedCalls: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockMarketRepository{GetTimeSeriesFunc: tc.mockFunc}
			qu := usecase.NewQuotesUsecase(mock)

			got, err := qu.GetSeries(ctx, tc.interval, tc.outputsize)

			if tc.expectErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.expectErr && !reflect.DeepEqual(got, tc.expectedCandles) {
				t.Errorf("candles = %+v, want %+v", got, tc.expectedCandles)
			}
			if mock.calls != tc.expectedCalls {
				t.Errorf("repository called %d times, want %d", mock.calls, tc.expectedCalls)
			}
		})
	}
}
