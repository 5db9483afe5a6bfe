package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"assetpulse/internal/domain/dto"
	"assetpulse/internal/domain/models"
	"assetpulse/internal/service"
)

// Handler provides HTTP handlers for the asset dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP path/query parameters
//   - Delegate to the service layer
//   - Translate service results and errors into JSON responses
type Handler struct {
	catalog   service.CatalogService
	series    service.SeriesService
	snapshots service.SnapshotService
}

// NewHandler constructs a new Handler instance.
func NewHandler(catalog service.CatalogService, series service.SeriesService, snapshots service.SnapshotService) *Handler {
	return &Handler{catalog: catalog, series: series, snapshots: snapshots}
}

// ListCryptoAssets godoc
// @Summary      List crypto assets
// @Description  Returns the crypto asset catalog, ordered by symbol
// @Tags         assets
// @Produce      json
// @Success      200  {array}   dto.AssetListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /assets/crypto [get]
func (h *Handler) ListCryptoAssets(c *gin.Context) {
	h.listAssetsByType(c, service.AssetTypeCrypto)
}

// ListStockAssets godoc
// @Summary      List stock assets
// @Description  Returns the stock asset catalog, ordered by symbol
// @Tags         assets
// @Produce      json
// @Success      200  {array}   dto.AssetListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /assets/stock [get]
func (h *Handler) ListStockAssets(c *gin.Context) {
	h.listAssetsByType(c, service.AssetTypeStock)
}

func (h *Handler) listAssetsByType(c *gin.Context, assetType string) {
	assets, err := h.catalog.AssetsByType(c.Request.Context(), assetType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssetList(assets))
}

// ListAllAssets godoc
// @Summary      List all assets
// @Description  Returns the full asset catalog, ordered by asset class and symbol
// @Tags         assets
// @Produce      json
// @Success      200  {array}   dto.AssetListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /assets [get]
func (h *Handler) ListAllAssets(c *gin.Context) {
	assets, err := h.catalog.AllAssets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssetList(assets))
}

// GetLatestAssets godoc
// @Summary      Latest asset snapshot
// @Description  Returns the cached latest-state batch for one asset class, or a placeholder row when the cache is unavailable
// @Tags         assets
// @Produce      json
// @Param        asset_type  path      string  true  "Asset class (crypto or stock)"
// @Success      200         {array}   models.LatestRecord
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /assets/{asset_type}/latest [get]
func (h *Handler) GetLatestAssets(c *gin.Context) {
	assetType := c.Param("asset_type")

	result, err := h.snapshots.LatestBatch(c.Request.Context(), assetType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if result.Degraded() {
		c.JSON(http.StatusOK, []dto.PlaceholderRow{{Message: result.Message}})
		return
	}
	c.JSON(http.StatusOK, result.Records)
}

// GetPriceSeries godoc
// @Summary      Historical price series
// @Description  Returns the price series for one symbol within a time window; a stock window with no data falls back to the last trading window of the same length
// @Tags         assets
// @Produce      json
// @Param        asset_type  path      string  true   "Asset class (crypto or stock)"
// @Param        symbol      path      string  true   "Ticker symbol"  example(BTC)
// @Param        from        query     string  false  "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        to          query     string  false  "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success      200         {object}  models.PriceSeries
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /assets/{asset_type}/{symbol}/prices [get]
func (h *Handler) GetPriceSeries(c *gin.Context) {
	assetType := c.Param("asset_type")
	symbol := c.Param("symbol")

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'from', expected RFC 3339 or YYYY-MM-DD", err))
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'to', expected RFC 3339 or YYYY-MM-DD", err))
		return
	}

	series, err := h.series.GetPriceSeries(c.Request.Context(), assetType, symbol, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetComparison godoc
// @Summary      Multi-symbol comparison series
// @Description  Returns a normalized comparison series where each symbol is rebased to 100 at its first close within the window
// @Tags         assets
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated symbols"  example(BTC,ETH,AAPL)
// @Param        from     query     string  false  "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        to       query     string  false  "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success      200      {object}  models.ComparisonSeries
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /assets/comparison [get]
func (h *Handler) GetComparison(c *gin.Context) {
	var symbols []string
	for _, s := range strings.Split(c.Query("symbols"), ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			symbols = append(symbols, s)
		}
	}

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'from', expected RFC 3339 or YYYY-MM-DD", err))
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid 'to', expected RFC 3339 or YYYY-MM-DD", err))
		return
	}

	series, err := h.series.GetIndexedSeries(c.Request.Context(), symbols, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetTopMovers godoc
// @Summary      Top movers ranking
// @Description  Returns the cached top-movers ranking for one asset class; unknown classes and cache failures yield a placeholder row, never an error
// @Tags         assets
// @Produce      json
// @Param        asset_type  path   string  true  "Asset class (crypto, stock or all)"
// @Success      200         {array}  models.MoverRecord
// @Router       /assets/{asset_type}/top-movers [get]
func (h *Handler) GetTopMovers(c *gin.Context) {
	result := h.snapshots.TopMovers(c.Request.Context(), c.Param("asset_type"))
	if result.Degraded() {
		c.JSON(http.StatusOK, []dto.PlaceholderRow{{Message: result.Message}})
		return
	}
	c.JSON(http.StatusOK, result.Records)
}

// parseTimeParam parses an optional time query parameter, accepting RFC 3339
// timestamps and plain dates. Empty input yields nil.
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// respondServiceError maps service errors onto the HTTP error taxonomy:
// invalid input is a client error, exhausted lookups are 404, and anything
// else (Row Source connectivity included) is a server error.
func respondServiceError(c *gin.Context, err error) {
	var nf *service.NotFoundError
	switch {
	case errors.Is(err, service.ErrInvalidAssetType), errors.Is(err, service.ErrNoSymbols):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(nf.Reason, nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to query asset data", err))
	}
}

// toAssetList projects catalog entries onto the list response, which
// intentionally exposes only symbols.
func toAssetList(assets []models.Asset) []dto.AssetListItem {
	out := make([]dto.AssetListItem, 0, len(assets))
	for _, a := range assets {
		out = append(out, dto.AssetListItem{Symbol: a.Symbol})
	}
	return out
}
