// Package handler はalertsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xrp_alert_backend/internal/api"
	"xrp_alert_backend/internal/feature/alerts/domain"
	"xrp_alert_backend/internal/feature/alerts/domain/entity"
	"xrp_alert_backend/internal/feature/alerts/transport/http/dto"
)

// AlertUsecase はアラートルール操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）側で定義します。
type AlertUsecase interface {
	Configure(symbol string, threshold float64, condition string, enabled bool) (entity.PriceAlert, error)
	List() []entity.PriceAlert
	DeleteAt(index int) (entity.PriceAlert, error)
}

// AlertHandler はアラートルールのHTTPリクエストを処理します。
type AlertHandler struct {
	alerts AlertUsecase
}

// NewAlertHandler は指定されたusecaseでAlertHandlerの新しいインスタンスを生成します。
func NewAlertHandler(alerts AlertUsecase) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// Configure は POST /alerts を処理します。
// - リクエストJSONをAlertRequestにバインド
// - バリデーションエラー・不正なcondition時は400を返却
// - 成功時は201で作成したアラートを返却
func (h *AlertHandler) Configure(c *gin.Context) {
	var req dto.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("alert validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	// enabled省略時はtrue（元仕様のデフォルト）
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	alert, err := h.alerts.Configure(req.Symbol, *req.Threshold, req.Condition, enabled)
	if err != nil {
		slog.Warn("alert rejected", "error", err, "condition", req.Condition, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid condition"})
		return
	}

	slog.Info("alert configured", "alert_id", alert.ID, "symbol", alert.Symbol,
		"condition", alert.Condition, "threshold", alert.Threshold)
	c.JSON(http.StatusCreated, dto.AlertResponse{
		Success: true,
		Alert:   dto.NewAlertJSON(alert),
		Message: fmt.Sprintf("Alert configured: XRP %s $%g", alert.Condition, alert.Threshold),
	})
}

// List は GET /alerts を処理し、登録順のアラート一覧を返します。
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.alerts.List()

	out := make([]dto.AlertJSON, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.NewAlertJSON(a))
	}

	c.JSON(http.StatusOK, dto.AlertListResponse{Alerts: out, Total: len(out)})
}

// Delete は DELETE /alerts/:index を処理します。
// - インデックスが数値でない場合は400
// - 範囲外の場合は404（リストは変更されない）
// - 成功時は200で削除確認を返却
func (h *AlertHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid index"})
		return
	}

	deleted, err := h.alerts.DeleteAt(index)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "alert not found"})
			return
		}
		slog.Error("alert delete failed", "error", err, "index", index)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "delete failed"})
		return
	}

	slog.Info("alert deleted", "alert_id", deleted.ID, "index", index)
	c.JSON(http.StatusOK, dto.DeleteAlertResponse{
		Success: true,
		Message: fmt.Sprintf("Alert deleted: %s %s $%g", deleted.Symbol, deleted.Condition, deleted.Threshold),
	})
}
