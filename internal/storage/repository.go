package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"assetpulse/internal/domain/models"
)

// AssetsRepository defines the read-only contract against the warehouse
// holding the asset dimension and the intraday price facts.
type AssetsRepository interface {
	PriceRows(ctx context.Context, assetType, symbol string, from, to time.Time) ([]models.PriceRow, error)
	PriceRowsForSymbols(ctx context.Context, symbols []string, from, to time.Time) ([]models.PriceRow, error)
	LastTimestamp(ctx context.Context, assetType, symbol string) (*time.Time, error)
	AssetsByType(ctx context.Context, assetType string) ([]models.Asset, error)
	AllAssets(ctx context.Context) ([]models.Asset, error)
}

type assetsRepository struct {
	db *sql.DB
}

func NewAssetsRepository(db *sql.DB) AssetsRepository {
	return &assetsRepository{db: db}
}

const priceRowsQuery = `
	SELECT
		ad.asset_type,
		ad.symbol,
		ad.name,
		f.snapshot_ts,
		f.close_price,
		f.volume,
		f.volume_usd
	FROM dwh.asset_dim ad
	JOIN dwh.intraday_price_fact f
	  ON f.asset_id = ad.asset_id
	WHERE ad.asset_type = $1
	  AND ad.symbol = $2
	  AND f.snapshot_ts BETWEEN $3 AND $4
	ORDER BY f.snapshot_ts ASC`

const priceRowsForSymbolsQuery = `
	SELECT
		ad.asset_type,
		ad.symbol,
		ad.name,
		f.snapshot_ts,
		f.close_price,
		f.volume,
		f.volume_usd
	FROM dwh.asset_dim ad
	JOIN dwh.intraday_price_fact f
	  ON f.asset_id = ad.asset_id
	WHERE ad.symbol = ANY($1)
	  AND f.snapshot_ts BETWEEN $2 AND $3
	ORDER BY ad.asset_type, ad.symbol, f.snapshot_ts ASC`

// PriceRows returns the price facts for one asset within [from, to],
// ascending by timestamp. An inverted range simply yields zero rows.
func (r *assetsRepository) PriceRows(ctx context.Context, assetType, symbol string, from, to time.Time) ([]models.PriceRow, error) {
	rows, err := r.db.QueryContext(ctx, priceRowsQuery, assetType, symbol, from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanPriceRows(rows)
}

// PriceRowsForSymbols returns the price facts for every symbol in the set
// within [from, to], ordered by (asset_type, symbol, snapshot_ts).
func (r *assetsRepository) PriceRowsForSymbols(ctx context.Context, symbols []string, from, to time.Time) ([]models.PriceRow, error) {
	rows, err := r.db.QueryContext(ctx, priceRowsForSymbolsQuery, pq.Array(symbols), from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanPriceRows(rows)
}

func scanPriceRows(rows *sql.Rows) ([]models.PriceRow, error) {
	var out []models.PriceRow
	for rows.Next() {
		var (
			row       models.PriceRow
			name      sql.NullString
			closeP    sql.NullFloat64
			volume    sql.NullFloat64
			volumeUSD sql.NullFloat64
		)
		if err := rows.Scan(&row.AssetType, &row.Symbol, &name, &row.Timestamp, &closeP, &volume, &volumeUSD); err != nil {
			return nil, err
		}
		if name.Valid {
			row.Name = &name.String
		}
		if closeP.Valid {
			row.ClosePrice = &closeP.Float64
		}
		if volume.Valid {
			row.Volume = &volume.Float64
		}
		if volumeUSD.Valid {
			row.VolumeUSD = &volumeUSD.Float64
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// LastTimestamp returns the most recent snapshot timestamp ever recorded for
// the asset, or nil when the asset has no facts at all.
func (r *assetsRepository) LastTimestamp(ctx context.Context, assetType, symbol string) (*time.Time, error) {
	var last sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT max(f.snapshot_ts) AS last_ts
		FROM dwh.asset_dim ad
		JOIN dwh.intraday_price_fact f ON f.asset_id = ad.asset_id
		WHERE ad.asset_type = $1
		  AND ad.symbol = $2`, assetType, symbol).Scan(&last)
	if err != nil {
		return nil, err
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

// AssetsByType returns the catalog entries for one asset class, ordered by symbol.
func (r *assetsRepository) AssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT asset_type, symbol, name
		FROM dwh.asset_dim
		WHERE asset_type = $1
		ORDER BY symbol`, assetType)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanAssets(rows)
}

// AllAssets returns the full catalog, ordered by (asset_type, symbol).
func (r *assetsRepository) AllAssets(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT asset_type, symbol, name
		FROM dwh.asset_dim
		ORDER BY asset_type, symbol`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanAssets(rows)
}

func scanAssets(rows *sql.Rows) ([]models.Asset, error) {
	var out []models.Asset
	for rows.Next() {
		var (
			a    models.Asset
			name sql.NullString
		)
		if err := rows.Scan(&a.AssetType, &a.Symbol, &name); err != nil {
			return nil, err
		}
		if name.Valid {
			a.Name = &name.String
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
