package service

import (
	"context"
	"strings"
	"time"

	"assetpulse/internal/domain/models"
	"assetpulse/internal/storage"
)

// SeriesService builds typed price series out of raw warehouse rows.
type SeriesService interface {
	// GetPriceSeries returns the historical series for one symbol. For
	// stocks an empty window falls back to a window of the same length
	// anchored at the symbol's last recorded timestamp.
	GetPriceSeries(ctx context.Context, assetType, symbol string, from, to *time.Time) (*models.PriceSeries, error)

	// GetIndexedSeries returns a multi-symbol comparison series with every
	// symbol rebased to 100 at its first non-null close in the window.
	GetIndexedSeries(ctx context.Context, symbols []string, from, to *time.Time) (*models.ComparisonSeries, error)
}

type seriesService struct {
	repo storage.AssetsRepository
}

func NewSeriesService(repo storage.AssetsRepository) SeriesService {
	return &seriesService{repo: repo}
}

func (s *seriesService) GetPriceSeries(ctx context.Context, assetType, symbol string, from, to *time.Time) (*models.PriceSeries, error) {
	if assetType != AssetTypeCrypto && assetType != AssetTypeStock {
		return nil, ErrInvalidAssetType
	}

	dateFrom, dateTo := ResolveWindow(from, to)

	rows, err := s.repo.PriceRows(ctx, assetType, symbol, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// Crypto trades continuously, so an empty window means the symbol
		// or range is genuinely invalid. Stock markets close on weekends
		// and holidays; re-anchor the same window length at the symbol's
		// last close before giving up.
		if assetType == AssetTypeCrypto {
			return nil, notFound("No data for given symbol / time range")
		}

		last, err := s.repo.LastTimestamp(ctx, assetType, symbol)
		if err != nil {
			return nil, err
		}
		if last == nil {
			return nil, notFound("No data at all for this symbol")
		}

		window := dateTo.Sub(dateFrom)
		newTo := *last
		newFrom := last.Add(-window)

		rows, err = s.repo.PriceRows(ctx, assetType, symbol, newFrom, newTo)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, notFound("No data for given symbol / time range")
		}
	}

	first := rows[0]
	series := &models.PriceSeries{
		AssetType: first.AssetType,
		Symbol:    first.Symbol,
		Name:      first.Name,
		Points:    make([]models.PricePoint, 0, len(rows)),
	}
	for _, row := range rows {
		series.Points = append(series.Points, models.PricePoint{
			Timestamp:  row.Timestamp,
			ClosePrice: row.ClosePrice,
			Volume:     row.Volume,
			VolumeUSD:  row.VolumeUSD,
		})
	}
	return series, nil
}

// groupKey identifies one symbol sub-series within the comparison query.
type groupKey struct {
	assetType string
	symbol    string
}

func (s *seriesService) GetIndexedSeries(ctx context.Context, symbols []string, from, to *time.Time) (*models.ComparisonSeries, error) {
	cleaned := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if sym = strings.TrimSpace(sym); sym != "" {
			cleaned = append(cleaned, sym)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoSymbols
	}

	dateFrom, dateTo := ResolveWindow(from, to)

	rows, err := s.repo.PriceRowsForSymbols(ctx, cleaned, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("No data for given symbols / time range")
	}

	// Group rows by (asset_type, symbol), preserving first-seen order so
	// presentation order is stable regardless of how groups interleave.
	order := make([]groupKey, 0, len(cleaned))
	grouped := make(map[groupKey][]models.PriceRow, len(cleaned))
	for _, row := range rows {
		key := groupKey{assetType: row.AssetType, symbol: row.Symbol}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], row)
	}

	series := make([]models.IndexedPoint, 0, len(rows))
	for _, key := range order {
		symRows := grouped[key]

		// Baseline: first non-null close in the sub-series. A null or zero
		// baseline drops the whole group; no point with an infinite or
		// zero-denominator value may ever reach the caller.
		var base *float64
		for _, r := range symRows {
			if r.ClosePrice != nil {
				base = r.ClosePrice
				break
			}
		}
		if base == nil || *base == 0 {
			continue
		}

		for _, r := range symRows {
			if r.ClosePrice == nil {
				continue
			}
			series = append(series, models.IndexedPoint{
				AssetType: r.AssetType,
				Symbol:    r.Symbol,
				Name:      r.Name,
				Timestamp: r.Timestamp,
				Value:     *r.ClosePrice / *base * 100.0,
			})
		}
	}

	if len(series) == 0 {
		return nil, notFound("No valid data for given symbols")
	}
	return &models.ComparisonSeries{Series: series}, nil
}
