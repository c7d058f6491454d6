package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrp_alert_backend/internal/feature/alerts/domain/entity"
	monitorusecase "xrp_alert_backend/internal/feature/monitor/usecase"
)

func testConfig() Config {
	return Config{BotToken: "test-token", ChatID: "12345"}
}

// TestTelegramNotifier_Notify_Success は送信パスとペイロード形式を検証します。
func TestTelegramNotifier_Notify_Success(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewTelegramNotifier(testConfig(), server.Client())
	n.baseURL = server.URL

	err := n.Notify(context.Background(), "🚨 XRP price crossed $2.5 (CURRENT: $2.6100)")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotPayload["chat_id"])
	assert.Equal(t, "🚨 XRP price crossed $2.5 (CURRENT: $2.6100)", gotPayload["text"])
	assert.Equal(t, "HTML", gotPayload["parse_mode"])
}

// TestTelegramNotifier_Notify_APIError はAPIエラー応答がエラーとして返ることを検証します。
func TestTelegramNotifier_Notify_APIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized},
		{name: "too many requests", statusCode: http.StatusTooManyRequests},
		{name: "server error", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(`{"ok":false}`))
			}))
			defer server.Close()

			n := NewTelegramNotifier(testConfig(), server.Client())
			n.baseURL = server.URL

			err := n.Notify(context.Background(), "msg")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "telegram API error")
		})
	}
}

// TestTelegramNotifier_Notify_ConnectionError は接続失敗がエラーとして返ることを検証します。
func TestTelegramNotifier_Notify_ConnectionError(t *testing.T) {
	t.Parallel()

	n := NewTelegramNotifier(testConfig(), &http.Client{Timeout: 1 * time.Second})
	n.baseURL = "http://127.0.0.1:1"

	err := n.Notify(context.Background(), "msg")
	assert.Error(t, err)
}

// TestTelegramNotifier_NotifyWithRetry は失敗後のリトライが成功することを検証します。
func TestTelegramNotifier_NotifyWithRetry(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewTelegramNotifier(testConfig(), server.Client())
	n.baseURL = server.URL

	err := n.NotifyWithRetry(context.Background(), "msg", 2)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

// TestTelegramNotifier_NotifyWithRetry_NoBackoffAfterLastAttempt は最終試行の失敗後に
// バックオフ待機なしで即座にエラーが返ることを検証します。
func TestTelegramNotifier_NotifyWithRetry_NoBackoffAfterLastAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewTelegramNotifier(testConfig(), server.Client())
	n.baseURL = server.URL

	start := time.Now()
	err := n.NotifyWithRetry(context.Background(), "msg", 0)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Less(t, elapsed, 500*time.Millisecond, "should not sleep after the last attempt")
}

type stubFetcher struct{ price float64 }

func (s stubFetcher) FetchPrice(_ context.Context) (float64, error) { return s.price, nil }

type stubChecker struct{ triggers []entity.TriggeredAlert }

func (s stubChecker) Check(_ float64) []entity.TriggeredAlert { return s.triggers }

type stubRecorder struct{ recorded int }

func (s *stubRecorder) Record(_ context.Context, _ entity.TriggeredAlert) error {
	s.recorded++
	return nil
}

// TestRetryNotifier_RecoversTransientFailure は監視ループからの配送が
// 一時的なAPI失敗後のリトライで成功することを検証します。
func TestRetryNotifier_RecoversTransientFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := NewTelegramNotifier(testConfig(), server.Client())
	tg.baseURL = server.URL

	var n monitorusecase.Notifier = NewRetryNotifier(tg, 2)
	err := n.Notify(context.Background(), "🚨 XRP price crossed $2.5 (CURRENT: $2.6100)")

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

// TestWatcher_DeliveryRetriesTransientFailure はWatcher.Poll経由の一回の発火が
// 最初の失敗後にリトライで配送・記録されることを検証します。
func TestWatcher_DeliveryRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := NewTelegramNotifier(testConfig(), server.Client())
	tg.baseURL = server.URL

	recorder := &stubRecorder{}
	w := monitorusecase.NewWatcher(
		stubFetcher{price: 2.61},
		stubChecker{triggers: []entity.TriggeredAlert{{AlertID: "a", Message: "crossed"}}},
		NewRetryNotifier(tg, 2),
		recorder,
	)
	w.Poll(context.Background())

	assert.Equal(t, 2, attempts, "delivery should retry after a transient failure")
	assert.Equal(t, 1, recorder.recorded)
}

// TestNewRetryNotifier_NegativeBudget は負のリトライ回数がデフォルト値に補正されることを検証します。
func TestNewRetryNotifier_NegativeBudget(t *testing.T) {
	t.Parallel()

	n := NewRetryNotifier(NewTelegramNotifier(testConfig(), http.DefaultClient), -1)
	assert.Equal(t, DefaultMaxRetries, n.maxRetries)
}

// TestTelegramNotifier_NotifyWithRetry_ContextCancelled はキャンセルでリトライが打ち切られることを検証します。
func TestTelegramNotifier_NotifyWithRetry_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewTelegramNotifier(testConfig(), server.Client())
	n.baseURL = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := n.NotifyWithRetry(ctx, "msg", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestLoadConfig は環境変数から設定が読み込まれることを検証します。
func TestLoadConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg := LoadConfig()

	assert.Equal(t, "tok", cfg.BotToken)
	assert.Equal(t, "42", cfg.ChatID)
}

// TestNoopNotifier はNoopNotifierが常にnilを返すことを検証します。
func TestNoopNotifier(t *testing.T) {
	t.Parallel()

	var n NoopNotifier
	assert.NoError(t, n.Notify(context.Background(), "msg"))
}
