package service

import "errors"

// Asset classes recognized by the query surface.
const (
	AssetTypeCrypto = "crypto"
	AssetTypeStock  = "stock"
	AssetTypeAll    = "all"
)

// Client-input errors, mapped to 400 at the HTTP boundary.
var (
	ErrInvalidAssetType = errors.New("invalid asset_type")
	ErrNoSymbols        = errors.New("no symbols provided")
)

// NotFoundError marks queries that matched no rows after every fallback
// attempt; mapped to 404 at the HTTP boundary.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

func notFound(reason string) error { return &NotFoundError{Reason: reason} }
