package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTime_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		raw  bool
	}{
		{name: "epoch millis", in: `1756339200000`, want: time.UnixMilli(1756339200000).UTC()},
		{name: "rfc3339", in: `"2025-08-28T00:00:00Z"`, want: time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC)},
		{name: "garbage string", in: `"yesterday"`, raw: true},
		{name: "object", in: `{"ts":1}`, raw: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			if err := json.Unmarshal([]byte(tc.in), &ft); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if tc.raw {
				if len(ft.Raw) == 0 || !ft.Time.IsZero() {
					t.Fatalf("expected raw passthrough, got %+v", ft)
				}
				out, err := json.Marshal(ft)
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}
				if string(out) != tc.in {
					t.Fatalf("raw not preserved: %s", out)
				}
				return
			}
			if !ft.Time.Equal(tc.want) {
				t.Fatalf("got %v want %v", ft.Time, tc.want)
			}
		})
	}
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
		raw  bool
	}{
		{name: "number", in: `0.03`, want: 0.03},
		{name: "numeric string", in: `"1234.5"`, want: 1234.5},
		{name: "padded numeric string", in: `" 2.5 "`, want: 2.5},
		{name: "malformed string", in: `"n/a"`, raw: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ff FlexFloat
			if err := json.Unmarshal([]byte(tc.in), &ff); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if tc.raw {
				if ff.Value != nil {
					t.Fatalf("expected no value, got %v", *ff.Value)
				}
				out, _ := json.Marshal(ff)
				if string(out) != tc.in {
					t.Fatalf("raw not preserved: %s", out)
				}
				return
			}
			if ff.Value == nil || *ff.Value != tc.want {
				t.Fatalf("got %+v want %v", ff, tc.want)
			}
		})
	}
}

func TestMoverRecord_RoundTrip(t *testing.T) {
	in := `{"asset_type":"crypto","symbol":"BTC","return_1d":"0.03","volume_usd":123.4}`
	var rec MoverRecord
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Return1D == nil || rec.Return1D.Value == nil || *rec.Return1D.Value != 0.03 {
		t.Fatalf("return_1d not coerced: %+v", rec.Return1D)
	}
	if rec.SignedReturn != nil {
		t.Fatalf("signed_return must not be set by decoding")
	}
}
