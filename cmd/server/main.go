package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"xrp_alert_backend/internal/app/di"
	"xrp_alert_backend/internal/app/router"
	"xrp_alert_backend/internal/feature/alerts/domain/entity"
	alerthandler "xrp_alert_backend/internal/feature/alerts/transport/handler"
	alertusecase "xrp_alert_backend/internal/feature/alerts/usecase"
	analysishandler "xrp_alert_backend/internal/feature/analysis/transport/handler"
	healthhandler "xrp_alert_backend/internal/feature/health/transport/handler"
	pricehandler "xrp_alert_backend/internal/feature/price/transport/handler"
	priceusecase "xrp_alert_backend/internal/feature/price/usecase"
	infraredis "xrp_alert_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// Redis（価格キャッシュ用・任意）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without price cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	marketRepo := di.NewMarketRepository(rdb)

	// Usecase
	priceUC := priceusecase.NewPriceUsecase(marketRepo)
	alertBook := alertusecase.NewAlertBook()

	// 起動時のデフォルトアラート
	if os.Getenv("SEED_DEFAULT_ALERTS") != "false" {
		seedDefaultAlerts(alertBook)
	}

	// Handler
	priceH := pricehandler.NewPriceHandler(priceUC)
	alertH := alerthandler.NewAlertHandler(alertBook)
	analysisH := analysishandler.NewAnalysisHandler(priceUC)
	healthH := healthhandler.NewHealthHandler(priceUC, alertBook)

	// ルータ生成
	r := router.NewRouter(healthH, alertH, priceH, analysisH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// seedDefaultAlerts は元サービスと同じ初期ルールを登録します
// （$2.50上抜けと$2.00下抜け）。
func seedDefaultAlerts(book *alertusecase.AlertBook) {
	defaults := []struct {
		threshold float64
		condition entity.Condition
	}{
		{2.50, entity.ConditionGreaterThan},
		{2.00, entity.ConditionLessThan},
	}
	for _, d := range defaults {
		if _, err := book.Configure(alertusecase.DefaultSymbol, d.threshold, string(d.condition), true); err != nil {
			log.Fatalf("failed to seed default alert: %v", err)
		}
	}
}
