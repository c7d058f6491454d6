package router

import (
	"github.com/gin-gonic/gin"

	alerthandler "xrp_alert_backend/internal/feature/alerts/transport/handler"
	analysishandler "xrp_alert_backend/internal/feature/analysis/transport/handler"
	healthhandler "xrp_alert_backend/internal/feature/health/transport/handler"
	pricehandler "xrp_alert_backend/internal/feature/price/transport/handler"
	platformhandler "xrp_alert_backend/internal/platform/http/handler"
)

func NewRouter(health *healthhandler.HealthHandler, alerts *alerthandler.AlertHandler,
	price *pricehandler.PriceHandler, analysis *analysishandler.AnalysisHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用（プロセス生存のみ）
	r.GET("/healthz", platformhandler.Health)

	// サービスバナー
	r.GET("/", health.Root)
	// 現在価格と有効アラート件数を含むサービス状態
	r.GET("/health", health.Health)

	// アラートルールの管理
	r.POST("/alerts", alerts.Configure)
	r.GET("/alerts", alerts.List)
	// 削除は位置インデックス指定（削除後は後続のインデックスがずれる）
	r.DELETE("/alerts/:index", alerts.Delete)

	// 現在価格の取得
	r.GET("/price", price.GetPrice)
	// 最新価格から合成した系列のトレンド分析
	r.POST("/analyze", analysis.Analyze)

	return r
}
