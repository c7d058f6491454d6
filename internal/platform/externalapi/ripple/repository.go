package ripple

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"xrp_alert_backend/internal/feature/price/usecase"
	"xrp_alert_backend/internal/platform/externalapi/ripple/dto"
)

// ChartsMarket はRipple Data APIのチャートエンドポイントから価格を取得する
// MarketRepository実装です。
type ChartsMarket struct {
	cfg    Config
	client *http.Client
}

// ChartsMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*ChartsMarket)(nil)

// NewChartsMarket は指定された設定とHTTPクライアントでChartsMarketの新しいインスタンスを生成します。
func NewChartsMarket(cfg Config, client *http.Client) *ChartsMarket {
	return &ChartsMarket{cfg: cfg, client: client}
}

// LatestPrice はチャートエンドポイントから取引ペアの最新価格を取得します。
// レスポンスは取引データオブジェクトのJSON配列で、先頭要素のpriceを返します。
// 4xx/5xx・JSONの不正・空配列はすべてエラーです。
func (m *ChartsMarket) LatestPrice(ctx context.Context) (float64, error) {
	u := fmt.Sprintf("%s/%s", m.cfg.BaseURL, m.cfg.Pair)

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	// リクエストを実行
	res, err := m.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("ripple http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var quotes []dto.ExchangeQuote
	if err := json.NewDecoder(res.Body).Decode(&quotes); err != nil {
		return 0, fmt.Errorf("decode quotes: %w", err)
	}
	if len(quotes) == 0 {
		return 0, fmt.Errorf("ripple: empty response for %s", m.cfg.Pair)
	}

	return quotes[0].Price, nil
}
