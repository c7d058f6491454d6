package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// setupTriggerTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTriggerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// triggered_alertsテーブルを作成
	err = db.AutoMigrate(&TriggerModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// TestNewTriggerGorm はNewTriggerGormコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewTriggerGorm(t *testing.T) {
	t.Parallel()

	db := setupTriggerTestDB(t)
	repo := NewTriggerGorm(db)

	assert.NotNil(t, repo, "recorder should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestTriggerGorm_Record は発火記録が全フィールドとともに永続化されることを検証します。
func TestTriggerGorm_Record(t *testing.T) {
	t.Parallel()

	db := setupTriggerTestDB(t)
	repo := NewTriggerGorm(db)

	triggeredAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	trigger := entity.TriggeredAlert{
		AlertID:   "8b6a2c1e-0000-0000-0000-000000000000",
		Symbol:    "xrpusd",
		Message:   "🚨 XRP price crossed $2.5 (CURRENT: $2.6100)",
		Price:     2.61,
		Threshold: 2.50,
		Timestamp: triggeredAt,
	}

	err := repo.Record(context.Background(), trigger)
	require.NoError(t, err)

	var rows []TriggerModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.NotZero(t, row.ID, "primary key should be assigned")
	assert.Equal(t, trigger.AlertID, row.AlertID)
	assert.Equal(t, "xrpusd", row.Symbol)
	assert.Equal(t, trigger.Message, row.Message)
	assert.Equal(t, 2.61, row.Price)
	assert.Equal(t, 2.50, row.Threshold)
	assert.True(t, row.TriggeredAt.Equal(triggeredAt), "triggered_at should round-trip")
}

// TestTriggerGorm_Record_Multiple は複数の発火記録が順に蓄積されることを検証します。
func TestTriggerGorm_Record_Multiple(t *testing.T) {
	t.Parallel()

	db := setupTriggerTestDB(t)
	repo := NewTriggerGorm(db)

	now := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		trigger := entity.TriggeredAlert{
			AlertID:   id,
			Symbol:    "xrpusd",
			Message:   "crossed",
			Price:     2.0 + float64(i)*0.1,
			Threshold: 2.0,
			Timestamp: now,
		}
		require.NoError(t, repo.Record(context.Background(), trigger))
	}

	var count int64
	require.NoError(t, db.Model(&TriggerModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var rows []TriggerModel
	require.NoError(t, db.Order("id").Find(&rows).Error)
	assert.Equal(t, "a", rows[0].AlertID)
	assert.Equal(t, "c", rows[2].AlertID)
}

// TestTriggerGorm_Record_ContextCancellation はコンテキストがキャンセルされた場合の動作を検証します。
func TestTriggerGorm_Record_ContextCancellation(t *testing.T) {
	t.Parallel()

	db := setupTriggerTestDB(t)
	repo := NewTriggerGorm(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// インメモリSQLiteはキャンセルされたコンテキストで常にエラーを返すとは限りません
	err := repo.Record(ctx, entity.TriggeredAlert{AlertID: "a", Symbol: "xrpusd"})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
