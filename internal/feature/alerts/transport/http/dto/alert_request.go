// Package dto はalertsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AlertRequest は POST /alerts のリクエストボディを表します。
// enabledは省略時にtrueとして扱うためポインタで受け取ります。
// thresholdは0を有効値として受け付けるため、存在チェックのみポインタで行います。
type AlertRequest struct {
	Symbol    string   `json:"symbol"`
	Threshold *float64 `json:"threshold" binding:"required"`
	Condition string   `json:"condition" binding:"required"`
	Enabled   *bool    `json:"enabled"`
}
