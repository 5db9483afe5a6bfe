package models

import "time"

// Asset is a catalog entry from the dimension table.
//
// Reference data is owned by the warehouse; this service only reads it.
//
// Fields:
//   - AssetType: "crypto" or "stock".
//   - Symbol: ticker symbol (e.g., "BTC", "AAPL").
//   - Name: optional display name.
//
// swagger:model Asset
type Asset struct {
	AssetType string  `json:"asset_type" example:"crypto"`
	Symbol    string  `json:"symbol" example:"BTC"`
	Name      *string `json:"name,omitempty" example:"Bitcoin"`
}

// PriceRow is a raw joined row from the asset dimension and the intraday
// price fact table. Numeric fields are pointers because the source may
// genuinely lack them; nil must be preserved rather than coerced to zero.
type PriceRow struct {
	AssetType  string
	Symbol     string
	Name       *string
	Timestamp  time.Time
	ClosePrice *float64
	Volume     *float64
	VolumeUSD  *float64
}

// PricePoint is one observation in a single-symbol price series.
//
// swagger:model PricePoint
type PricePoint struct {
	Timestamp  time.Time `json:"snapshot_ts" example:"2025-09-01T12:00:00Z"`
	ClosePrice *float64  `json:"close_price" example:"64250.5"`
	Volume     *float64  `json:"volume,omitempty" example:"1234.5"`
	VolumeUSD  *float64  `json:"volume_usd,omitempty" example:"79312345.6"`
}

// PriceSeries is the historical price series for one asset, sorted ascending
// by timestamp. Built per request, never persisted.
//
// swagger:model PriceSeries
type PriceSeries struct {
	AssetType string       `json:"asset_type" example:"crypto"`
	Symbol    string       `json:"symbol" example:"BTC"`
	Name      *string      `json:"name" example:"Bitcoin"`
	Points    []PricePoint `json:"points"`
}

// IndexedPoint is one observation in a multi-symbol comparison series.
// Value is the close price rebased to 100 at the symbol's first non-null
// close within the window.
//
// swagger:model IndexedPoint
type IndexedPoint struct {
	AssetType string    `json:"asset_type" example:"crypto"`
	Symbol    string    `json:"symbol" example:"BTC"`
	Name      *string   `json:"name" example:"Bitcoin"`
	Timestamp time.Time `json:"snapshot_ts" example:"2025-09-01T12:00:00Z"`
	Value     float64   `json:"value" example:"104.2"`
}

// ComparisonSeries is the flattened normalized series for a set of symbols.
//
// swagger:model ComparisonSeries
type ComparisonSeries struct {
	Series []IndexedPoint `json:"series"`
}
