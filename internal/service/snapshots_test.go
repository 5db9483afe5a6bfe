package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetpulse/internal/storage"
)

// fakeSnapshotStore scripts the cache: values by key, or a store-level error.
type fakeSnapshotStore struct {
	values map[string]string
	err    error
}

var _ storage.SnapshotStore = (*fakeSnapshotStore)(nil)

func (f *fakeSnapshotStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	val, ok := f.values[key]
	return val, ok, nil
}

func TestLatestBatch_InvalidAssetType(t *testing.T) {
	svc := NewSnapshotService(&fakeSnapshotStore{})
	if _, err := svc.LatestBatch(context.Background(), "fx"); !errors.Is(err, ErrInvalidAssetType) {
		t.Fatalf("want ErrInvalidAssetType, got %v", err)
	}
}

func TestLatestBatch_NeverRaisesOnBadCache(t *testing.T) {
	cases := []struct {
		name  string
		store *fakeSnapshotStore
	}{
		{name: "store error", store: &fakeSnapshotStore{err: errors.New("connection refused")}},
		{name: "missing key", store: &fakeSnapshotStore{values: map[string]string{}}},
		{name: "empty value", store: &fakeSnapshotStore{values: map[string]string{"asset:latest_batch:crypto": ""}}},
		{name: "malformed json", store: &fakeSnapshotStore{values: map[string]string{"asset:latest_batch:crypto": "{not json"}}},
		{name: "non-list json", store: &fakeSnapshotStore{values: map[string]string{"asset:latest_batch:crypto": `{"symbol":"BTC"}`}}},
		{name: "json null", store: &fakeSnapshotStore{values: map[string]string{"asset:latest_batch:crypto": "null"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSnapshotService(tc.store)
			out, err := svc.LatestBatch(context.Background(), "crypto")
			if err != nil {
				t.Fatalf("cache failures must not error: %v", err)
			}
			if !out.Degraded() || out.Records != nil {
				t.Fatalf("expected degraded placeholder, got %+v", out)
			}
			if out.Message != "Error loading crypto data from cache. Please wait a few minutes and refresh the dashboard." {
				t.Fatalf("unexpected message: %q", out.Message)
			}
		})
	}
}

func TestLatestBatch_StockPlaceholderWording(t *testing.T) {
	svc := NewSnapshotService(&fakeSnapshotStore{values: map[string]string{}})
	out, err := svc.LatestBatch(context.Background(), "stock")
	if err != nil {
		t.Fatalf("LatestBatch: %v", err)
	}
	if out.Message != "Error loading stocks data from cache. Please wait a few minutes and refresh the dashboard." {
		t.Fatalf("unexpected message: %q", out.Message)
	}
}

func TestLatestBatch_EpochMillisDatetime(t *testing.T) {
	payload := `[{"symbol":"AAPL","name":"Apple Inc.","datetime":1756339200000,"close":230.1,"volume":1000}]`
	svc := NewSnapshotService(&fakeSnapshotStore{values: map[string]string{"asset:latest_batch:stock": payload}})

	out, err := svc.LatestBatch(context.Background(), "stock")
	if err != nil || out.Degraded() {
		t.Fatalf("LatestBatch: out=%+v err=%v", out, err)
	}
	if len(out.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out.Records))
	}
	rec := out.Records[0]
	if rec.Datetime == nil || !rec.Datetime.Time.Equal(time.UnixMilli(1756339200000).UTC()) {
		t.Fatalf("datetime not converted: %+v", rec.Datetime)
	}
}

func TestTopMovers_UnknownClassDegrades(t *testing.T) {
	svc := NewSnapshotService(&fakeSnapshotStore{err: errors.New("must not be called")})
	out := svc.TopMovers(context.Background(), "commodities")
	if !out.Degraded() {
		t.Fatalf("unknown class must yield a placeholder, got %+v", out)
	}
	if out.Message != "Error loading commodities top movers from cache. Please wait a few minutes and refresh the dashboard." {
		t.Fatalf("unexpected message: %q", out.Message)
	}
}

func TestTopMovers_SignedReturnConvention(t *testing.T) {
	payload := `[
		{"asset_type":"crypto","symbol":"BTC","return_1d":0.03},
		{"asset_type":"stock","symbol":"AAPL","return_1d":0.03},
		{"symbol":"NOCLASS","return_1d":0.01},
		{"asset_type":"stock","symbol":"NORET"}
	]`
	svc := NewSnapshotService(&fakeSnapshotStore{values: map[string]string{"asset:top_movers:all": payload}})

	out := svc.TopMovers(context.Background(), "all")
	if out.Degraded() || len(out.Records) != 4 {
		t.Fatalf("unexpected result: %+v", out)
	}

	if sr := out.Records[0].SignedReturn; sr == nil || *sr != 0.03 {
		t.Fatalf("crypto signed_return: %v", sr)
	}
	if sr := out.Records[1].SignedReturn; sr == nil || *sr != -0.03 {
		t.Fatalf("stock signed_return: %v", sr)
	}
	// missing asset_type follows the non-crypto branch
	if sr := out.Records[2].SignedReturn; sr == nil || *sr != -0.01 {
		t.Fatalf("classless signed_return: %v", sr)
	}
	// no usable return_1d: no signed value, no failure
	if out.Records[3].SignedReturn != nil {
		t.Fatalf("signed_return derived without return_1d")
	}
}

func TestTopMovers_NoSignedReturnForSingleClass(t *testing.T) {
	payload := `[{"asset_type":"crypto","symbol":"BTC","return_1d":"0.05","volume_usd":"123.4"}]`
	svc := NewSnapshotService(&fakeSnapshotStore{values: map[string]string{"asset:top_movers:crypto": payload}})

	out := svc.TopMovers(context.Background(), "crypto")
	if out.Degraded() || len(out.Records) != 1 {
		t.Fatalf("unexpected result: %+v", out)
	}
	rec := out.Records[0]
	if rec.SignedReturn != nil {
		t.Fatalf("signed_return must only exist for the all view")
	}
	// numeric strings are coerced on decode
	if rec.Return1D.Value == nil || *rec.Return1D.Value != 0.05 {
		t.Fatalf("return_1d not coerced: %+v", rec.Return1D)
	}
	if rec.VolumeUSD.Value == nil || *rec.VolumeUSD.Value != 123.4 {
		t.Fatalf("volume_usd not coerced: %+v", rec.VolumeUSD)
	}
}

func TestTopMovers_CacheFailuresDegrade(t *testing.T) {
	cases := []struct {
		name  string
		store *fakeSnapshotStore
	}{
		{name: "store error", store: &fakeSnapshotStore{err: errors.New("timeout")}},
		{name: "missing key", store: &fakeSnapshotStore{values: map[string]string{}}},
		{name: "malformed json", store: &fakeSnapshotStore{values: map[string]string{"asset:top_movers:crypto": "[{"}}},
		{name: "non-list json", store: &fakeSnapshotStore{values: map[string]string{"asset:top_movers:crypto": `"str"`}}},
		{name: "json null", store: &fakeSnapshotStore{values: map[string]string{"asset:top_movers:crypto": "null"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSnapshotService(tc.store)
			out := svc.TopMovers(context.Background(), "crypto")
			if !out.Degraded() || out.Records != nil {
				t.Fatalf("expected placeholder, got %+v", out)
			}
		})
	}
}
