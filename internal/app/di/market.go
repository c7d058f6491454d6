// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"

	priceusecase "xrp_alert_backend/internal/feature/price/usecase"
	"xrp_alert_backend/internal/platform/cache"
	"xrp_alert_backend/internal/platform/externalapi/ripple"
	infrahttp "xrp_alert_backend/internal/platform/http"
)

// NewMarketRepository creates the market data source used by the price
// usecase. With a Redis client the source is wrapped in a short-TTL price
// cache; with nil the cache layer passes straight through.
func NewMarketRepository(rdb *redis.Client) priceusecase.MarketRepository {
	cfg := ripple.LoadConfig()
	market := ripple.NewChartsMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	return cache.NewCachingMarketRepository(rdb, cache.DefaultPriceTTL, market, "price", cfg.Pair)
}
