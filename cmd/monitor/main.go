// Command monitor runs the standalone monitoring mode: it polls the current
// price on a cron schedule, evaluates the alert rules and delivers every
// trigger to the configured notification channel and trigger log.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"xrp_alert_backend/internal/app/di"
	"xrp_alert_backend/internal/feature/alerts/domain/entity"
	alertusecase "xrp_alert_backend/internal/feature/alerts/usecase"
	"xrp_alert_backend/internal/feature/monitor/adapters"
	monitorusecase "xrp_alert_backend/internal/feature/monitor/usecase"
	priceusecase "xrp_alert_backend/internal/feature/price/usecase"
	infraredis "xrp_alert_backend/internal/platform/redis"
)

const defaultSchedule = "@every 1m"

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

	// 発火履歴DB（SQLite・任意）
	var db *gorm.DB
	if path := os.Getenv("TRIGGER_DB_PATH"); path != "" {
		var err error
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open trigger db: %v", err)
		}
		if err := db.AutoMigrate(&adapters.TriggerModel{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		log.Println("[INFO] recording triggers to", path)
	} else {
		log.Println("[INFO] TRIGGER_DB_PATH not set; triggers are not recorded")
	}

	marketRepo := di.NewMarketRepository(rdb)
	priceUC := priceusecase.NewPriceUsecase(marketRepo)
	alertBook := alertusecase.NewAlertBook()
	seedDefaultAlerts(alertBook)

	watcher := monitorusecase.NewWatcher(priceUC, alertBook, di.NewNotifier(), di.NewTriggerRecorder(db))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schedule := os.Getenv("MONITOR_CRON")
	if schedule == "" {
		schedule = defaultSchedule
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		tickCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		watcher.Poll(tickCtx)
	}); err != nil {
		log.Fatalf("register poll task: %v", err)
	}

	c.Start()
	log.Println("[INFO] monitor started, schedule:", schedule)

	// 初回は待たずに実行
	watcher.Poll(ctx)

	<-ctx.Done()
	c.Stop()
	log.Println("[INFO] monitor stopped")
}

// seedDefaultAlerts は監視モードの初期ルールを登録します。
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
