// Package handler はサービス状態を公開するHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xrp_alert_backend/internal/feature/health/transport/http/dto"
)

// ServiceName is the banner returned by the root endpoint.
const ServiceName = "XRP Price Alert Bot"

// PriceReader は最後に観測した価格の読み取りを抽象化します。
type PriceReader interface {
	CurrentPrice() (float64, bool)
}

// AlertCounter は有効なアラート件数の読み取りを抽象化します。
type AlertCounter interface {
	ActiveCount() int
}

// HealthHandler はサービス状態のHTTPリクエストを処理します。
type HealthHandler struct {
	price  PriceReader
	alerts AlertCounter
}

// NewHealthHandler はHealthHandlerの新しいインスタンスを生成します。
func NewHealthHandler(price PriceReader, alerts AlertCounter) *HealthHandler {
	return &HealthHandler{price: price, alerts: alerts}
}

// Root は GET / を処理し、サービスバナーとエンドポイント一覧を返します。
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Service:   ServiceName,
		Status:    "running",
		Endpoints: []string{"/alerts", "/price", "/analyze", "/health"},
	})
}

// Health は GET /health を処理します。
// 起動後まだ一度も価格を取得できていない場合、current_priceはnullになります。
func (h *HealthHandler) Health(c *gin.Context) {
	var current *float64
	if price, ok := h.price.CurrentPrice(); ok {
		current = &price
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "healthy",
		CurrentPrice: current,
		AlertsActive: h.alerts.ActiveCount(),
	})
}
