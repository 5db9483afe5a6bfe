package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexTime is a timestamp field as written by the snapshot producers.
//
// Producers have serialized timestamps both as RFC 3339 strings and as
// epoch-millisecond numbers; both decode into Time. Anything else is kept
// verbatim in Raw and written back unchanged, so a drifting producer never
// makes the whole snapshot undecodable.
type FlexTime struct {
	Time time.Time
	Raw  json.RawMessage
}

// UnmarshalJSON accepts epoch-millisecond numbers and RFC 3339 strings.
func (t *FlexTime) UnmarshalJSON(b []byte) error {
	var ms float64
	if err := json.Unmarshal(b, &ms); err == nil {
		t.Time = time.UnixMilli(int64(ms)).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			t.Time = ts
			return nil
		}
	}

	t.Raw = append(t.Raw[:0], b...)
	return nil
}

// MarshalJSON writes the parsed timestamp as RFC 3339, or the original
// payload when it could not be parsed.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	if !t.Time.IsZero() {
		return json.Marshal(t.Time)
	}
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	return []byte("null"), nil
}

// FlexFloat is a numeric field as written by the snapshot producers.
//
// Accepts JSON numbers and numeric-looking strings; malformed strings are
// kept verbatim in Raw and written back untouched rather than dropped.
type FlexFloat struct {
	Value *float64
	Raw   json.RawMessage
}

// UnmarshalJSON accepts numbers and numeric strings.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.Value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.Value = &n
			return nil
		}
	}

	f.Raw = append(f.Raw[:0], b...)
	return nil
}

// MarshalJSON writes the parsed number, or the original payload when it
// could not be parsed.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value != nil {
		return json.Marshal(*f.Value)
	}
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	return []byte("null"), nil
}

// LatestRecord is one per-asset entry of a latest-batch snapshot.
//
// The snapshot is an ordered list replaced wholesale by the producer on each
// write; every field is optional because producer schemas evolve
// independently of this service. Unknown producers fields are not carried.
//
// swagger:model LatestRecord
type LatestRecord struct {
	AssetType *string    `json:"asset_type,omitempty"`
	Symbol    *string    `json:"symbol,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Datetime  *FlexTime  `json:"datetime,omitempty"`
	Open      *float64   `json:"open,omitempty"`
	High      *float64   `json:"high,omitempty"`
	Low       *float64   `json:"low,omitempty"`
	Close     *float64   `json:"close,omitempty"`
	Volume    *float64   `json:"volume,omitempty"`
	VolumeUSD *FlexFloat `json:"volume_usd,omitempty"`
	Return24h *FlexFloat `json:"return_24h,omitempty"`
}

// MoverRecord is one per-asset entry of a top-movers snapshot.
//
// SignedReturn is derived for the combined "all" view only: it equals
// Return1D for crypto records and its negation for everything else. The sign
// convention is the dashboard's presentation contract, giving mixed-class
// rankings a single sortable axis; it carries no financial meaning.
//
// swagger:model MoverRecord
type MoverRecord struct {
	AssetType    *string    `json:"asset_type,omitempty"`
	Symbol       *string    `json:"symbol,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Return1D     *FlexFloat `json:"return_1d,omitempty"`
	VolumeUSD    *FlexFloat `json:"volume_usd,omitempty"`
	SignedReturn *float64   `json:"signed_return,omitempty"`
}
