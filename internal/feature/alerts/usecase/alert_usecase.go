// Package usecase はアラートルール操作のビジネスロジックを実装します。
package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"xrp_alert_backend/internal/feature/alerts/domain"
	"xrp_alert_backend/internal/feature/alerts/domain/entity"
)

// DefaultSymbol はシンボル未指定時に使用されるデフォルトの取引ペアです。
const DefaultSymbol = "xrpusd"

// AlertBook はアラートルールの登録順リストを保持します。
// ginのハンドラーは並行に実行されるため、リストへのアクセスはRWMutexで保護します。
// 削除は位置インデックスで行うため、登録順がそのまま外部から見える順序になります。
type AlertBook struct {
	mu     sync.RWMutex
	alerts []entity.PriceAlert
}

// NewAlertBook はAlertBookの新しいインスタンスを生成します。
func NewAlertBook() *AlertBook {
	return &AlertBook{}
}

// Configure は新しいアラートルールを検証して末尾に追加します。
// conditionが認識できない値の場合はdomain.ErrInvalidConditionを返します。
func (b *AlertBook) Configure(symbol string, threshold float64, condition string, enabled bool) (entity.PriceAlert, error) {
	cond, err := entity.ParseCondition(condition)
	if err != nil {
		return entity.PriceAlert{}, err
	}
	if symbol == "" {
		symbol = DefaultSymbol
	}

	alert := entity.PriceAlert{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Threshold: threshold,
		Condition: cond,
		Enabled:   enabled,
		CreatedAt: time.Now().UTC(),
	}

	b.mu.Lock()
	b.alerts = append(b.alerts, alert)
	b.mu.Unlock()

	return alert, nil
}

// List は登録順のアラート一覧のコピーを返します。
func (b *AlertBook) List() []entity.PriceAlert {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entity.PriceAlert, len(b.alerts))
	copy(out, b.alerts)
	return out
}

// DeleteAt は位置インデックスでアラートを削除し、削除したアラートを返します。
// 範囲外の場合はdomain.ErrAlertNotFoundを返し、リストは変更しません。
// 削除後は後続アラートのインデックスが1つずつ前にずれます。
func (b *AlertBook) DeleteAt(index int) (entity.PriceAlert, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.alerts) {
		return entity.PriceAlert{}, domain.ErrAlertNotFound
	}

	deleted := b.alerts[index]
	b.alerts = append(b.alerts[:index], b.alerts[index+1:]...)
	return deleted, nil
}

// ActiveCount は有効なアラートの件数を返します。
func (b *AlertBook) ActiveCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, a := range b.alerts {
		if a.Enabled {
			n++
		}
	}
	return n
}

// Check は価格に対して全アラートを登録順に評価し、発火したアラートを返します。
// 無効化されたアラートはスキップします。しきい値と等しい価格では発火しません。
// アラートの状態は変更せず、呼び出しをまたいだ重複抑制も行いません。
func (b *AlertBook) Check(price float64) []entity.TriggeredAlert {
	b.mu.RLock()
	defer b.mu.RUnlock()

	now := time.Now().UTC()
	var triggered []entity.TriggeredAlert
	for _, a := range b.alerts {
		if !a.Enabled {
			continue
		}

		var message string
		switch {
		case a.Condition == entity.ConditionGreaterThan && price > a.Threshold:
			message = fmt.Sprintf("🚨 XRP price crossed $%g (CURRENT: $%.4f)", a.Threshold, price)
		case a.Condition == entity.ConditionLessThan && price < a.Threshold:
			message = fmt.Sprintf("🚨 XRP price dropped below $%g (CURRENT: $%.4f)", a.Threshold, price)
		default:
			continue
		}

		triggered = append(triggered, entity.TriggeredAlert{
			AlertID:   a.ID,
			Symbol:    a.Symbol,
			Message:   message,
			Price:     price,
			Threshold: a.Threshold,
			Timestamp: now,
		})
	}
	return triggered
}
