// Package usecase は現在価格の取得と保持のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrPriceUnavailable indicates that the market source could not produce a
// price (network error, timeout, or malformed response). The underlying cause
// is logged here and never surfaced to clients.
var ErrPriceUnavailable = errors.New("price unavailable")

// MarketRepository は外部マーケットデータソースを抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）側で定義します。
type MarketRepository interface {
	// LatestPrice は取引ペアの最新価格を取得します。
	LatestPrice(ctx context.Context) (float64, error)
}

// PriceUsecase は最後に観測した価格を保持する価格取得ユースケースです。
// 観測値はフェッチごとに上書きされ、永続化はしません。
type PriceUsecase struct {
	market MarketRepository

	mu         sync.RWMutex
	current    float64
	observed   bool
	observedAt time.Time
}

// NewPriceUsecase はPriceUsecaseの新しいインスタンスを生成します。
func NewPriceUsecase(market MarketRepository) *PriceUsecase {
	return &PriceUsecase{market: market}
}

// FetchPrice は外部ソースから現在価格を取得し、観測値として記録します。
// 失敗時は原因をログに残し、ErrPriceUnavailableを返します。
// 取得失敗で保持中の観測値が消えることはありません。
func (u *PriceUsecase) FetchPrice(ctx context.Context) (float64, error) {
	price, err := u.market.LatestPrice(ctx)
	if err != nil {
		slog.Error("price fetch failed", "error", err)
		return 0, ErrPriceUnavailable
	}

	u.mu.Lock()
	u.current = price
	u.observed = true
	u.observedAt = time.Now().UTC()
	u.mu.Unlock()

	return price, nil
}

// CurrentPrice は最後に観測した価格を返します。
// 一度も取得に成功していない場合、2番目の戻り値はfalseです。
func (u *PriceUsecase) CurrentPrice() (float64, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current, u.observed
}
