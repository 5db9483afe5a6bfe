package dto

// AssetListItem is one entry of the asset catalog endpoints.
//
// The catalog response intentionally exposes only the symbol; dashboards use
// it to populate variable dropdowns.
//
// swagger:model AssetListItem
type AssetListItem struct {
	Symbol string `json:"symbol" example:"BTC"`
}

// PlaceholderRow is the degraded-mode substitute for cached snapshot data.
//
// It is returned with a 200 status as a single-element list so dashboards
// render the message in place of the missing panel instead of breaking.
//
// swagger:model PlaceholderRow
type PlaceholderRow struct {
	Message string `json:"message" example:"Error loading crypto data from cache. Please wait a few minutes and refresh the dashboard."`
}
