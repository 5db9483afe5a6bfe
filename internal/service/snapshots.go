package service

import (
	"context"
	"encoding/json"
	"fmt"

	"assetpulse/internal/domain/models"
	"assetpulse/internal/logger"
	"assetpulse/internal/storage"
)

// Cache keys written by the external producer jobs.
const (
	latestBatchKeyPrefix = "asset:latest_batch:"
	topMoversKeyPrefix   = "asset:top_movers:"
)

// LatestResult is the outcome of a latest-batch read: either the decoded
// records or a degraded placeholder message. Never both.
type LatestResult struct {
	Records []models.LatestRecord
	Message string
}

// Degraded reports whether the result substitutes a placeholder for data.
func (r LatestResult) Degraded() bool { return r.Message != "" }

// MoversResult is the outcome of a top-movers read; same shape as LatestResult.
type MoversResult struct {
	Records []models.MoverRecord
	Message string
}

func (r MoversResult) Degraded() bool { return r.Message != "" }

// SnapshotService reads precomputed dashboard snapshots from the cache.
//
// The cache is a soft dependency: every failure mode (store error, missing
// key, corrupt payload) resolves to a degraded placeholder instead of an
// error, so a stale cache shows a message rather than breaking a panel.
type SnapshotService interface {
	// LatestBatch returns the latest per-asset state for one asset class.
	// The only error is ErrInvalidAssetType for classes other than
	// crypto/stock; cache failures degrade instead.
	LatestBatch(ctx context.Context, assetType string) (LatestResult, error)

	// TopMovers returns the per-class ranking. An unrecognized class is
	// treated as a cache miss (degraded), not a client error.
	TopMovers(ctx context.Context, assetType string) MoversResult
}

type snapshotService struct {
	store storage.SnapshotStore
}

func NewSnapshotService(store storage.SnapshotStore) SnapshotService {
	return &snapshotService{store: store}
}

func (s *snapshotService) LatestBatch(ctx context.Context, assetType string) (LatestResult, error) {
	if assetType != AssetTypeCrypto && assetType != AssetTypeStock {
		return LatestResult{}, ErrInvalidAssetType
	}

	// The dashboard's stock placeholder historically says "stocks".
	label := assetType
	if assetType == AssetTypeStock {
		label = "stocks"
	}
	message := fmt.Sprintf("Error loading %s data from cache. Please wait a few minutes and refresh the dashboard.", label)

	key := latestBatchKeyPrefix + assetType
	raw, ok := s.fetch(ctx, key)
	if !ok {
		return LatestResult{Message: message}, nil
	}

	var records []models.LatestRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt or non-list payloads are discarded wholesale; partially
		// parsed data must never reach a dashboard.
		logger.L().Warn().Err(err).Str("key", key).Msg("invalid snapshot payload, ignoring")
		return LatestResult{Message: message}, nil
	}
	if records == nil {
		// A JSON null decodes without error but is not a list.
		logger.L().Warn().Str("key", key).Msg("null snapshot payload, ignoring")
		return LatestResult{Message: message}, nil
	}

	return LatestResult{Records: records}, nil
}

func (s *snapshotService) TopMovers(ctx context.Context, assetType string) MoversResult {
	message := fmt.Sprintf("Error loading %s top movers from cache. Please wait a few minutes and refresh the dashboard.", assetType)

	// An unknown class label is deliberately lenient: dashboards tolerate
	// it as missing data, so it degrades instead of failing validation.
	if assetType != AssetTypeCrypto && assetType != AssetTypeStock && assetType != AssetTypeAll {
		return MoversResult{Message: message}
	}

	key := topMoversKeyPrefix + assetType
	raw, ok := s.fetch(ctx, key)
	if !ok {
		return MoversResult{Message: message}
	}

	var records []models.MoverRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.L().Warn().Err(err).Str("key", key).Msg("invalid snapshot payload, ignoring")
		return MoversResult{Message: message}
	}
	if records == nil {
		logger.L().Warn().Str("key", key).Msg("null snapshot payload, ignoring")
		return MoversResult{Message: message}
	}

	if assetType == AssetTypeAll {
		deriveSignedReturns(records)
	}

	return MoversResult{Records: records}
}

// deriveSignedReturns fills SignedReturn for the combined "all" ranking:
// crypto keeps return_1d, every other class is negated. This is the
// dashboard's sign convention for a single mixed-class axis, nothing more.
// Records without a usable return_1d are left without a signed value.
func deriveSignedReturns(records []models.MoverRecord) {
	for i := range records {
		rec := &records[i]
		if rec.Return1D == nil || rec.Return1D.Value == nil {
			continue
		}
		signed := *rec.Return1D.Value
		if rec.AssetType == nil || *rec.AssetType != AssetTypeCrypto {
			signed = -signed
		}
		rec.SignedReturn = &signed
	}
}

// fetch reads one key, folding store errors and absent or empty values into
// a single "not usable" outcome. No retries: a transient cache error falls
// straight through to the placeholder.
func (s *snapshotService) fetch(ctx context.Context, key string) ([]byte, bool) {
	val, found, err := s.store.Get(ctx, key)
	if err != nil {
		logger.L().Warn().Err(err).Str("key", key).Msg("snapshot store error")
		return nil, false
	}
	if !found || val == "" {
		return nil, false
	}
	return []byte(val), true
}
