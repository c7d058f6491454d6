// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"xrp_alert_backend/internal/api"
	"xrp_alert_backend/internal/feature/analysis/usecase"
)

// PriceFetcher は分析入力となる現在価格の取得を抽象化します。
type PriceFetcher interface {
	FetchPrice(ctx context.Context) (float64, error)
}

// AnalysisHandler はトレンド分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	price PriceFetcher
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(price PriceFetcher) *AnalysisHandler {
	return &AnalysisHandler{price: price}
}

// Analyze は POST /analyze を処理します。
// 最新の取得価格から合成した価格系列に対してトレンド分類を実行します。
// 価格の取得に失敗した場合は500を返します。
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	price, err := h.price.FetchPrice(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch price"})
		return
	}

	result := usecase.AnalyzeTrend(usecase.SyntheticSeries(price), usecase.DefaultTimeframe)
	c.JSON(http.StatusOK, result)
}
