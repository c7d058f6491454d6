// Package dto defines the wire format of the Ripple Data API charts endpoint.
package dto

// ExchangeQuote はチャートエンドポイントが返す配列の1要素です。
// 必要なのはpriceのみですが、レスポンスの形を残すため主要フィールドを保持します。
type ExchangeQuote struct {
	Price         float64 `json:"price"`
	BaseVolume    float64 `json:"base_volume"`
	CounterVolume float64 `json:"counter_volume"`
	Count         int     `json:"count"`
	Start         string  `json:"start"`
}
