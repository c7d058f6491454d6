// Package handler はpriceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xrp_alert_backend/internal/api"
	"xrp_alert_backend/internal/feature/price/transport/http/dto"
)

// PriceUsecase は価格取得のユースケースを定義します。
type PriceUsecase interface {
	FetchPrice(ctx context.Context) (float64, error)
}

// PriceHandler は現在価格のHTTPリクエストを処理します。
type PriceHandler struct {
	price PriceUsecase
}

// NewPriceHandler は指定されたusecaseでPriceHandlerの新しいインスタンスを生成します。
func NewPriceHandler(price PriceUsecase) *PriceHandler {
	return &PriceHandler{price: price}
}

// GetPrice は GET /price を処理します。
// 取得失敗時は500を返します。原因は下位レイヤーでログ済みのため公開しません。
func (h *PriceHandler) GetPrice(c *gin.Context) {
	price, err := h.price.FetchPrice(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch price"})
		return
	}

	c.JSON(http.StatusOK, dto.PriceResponse{
		Price:     price,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
