package service

import (
	"context"

	"assetpulse/internal/domain/models"
	"assetpulse/internal/storage"
)

// CatalogService exposes the asset dimension for dashboard dropdowns.
type CatalogService interface {
	AssetsByType(ctx context.Context, assetType string) ([]models.Asset, error)
	AllAssets(ctx context.Context) ([]models.Asset, error)
}

type catalogService struct {
	repo storage.AssetsRepository
}

func NewCatalogService(repo storage.AssetsRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) AssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	if assetType != AssetTypeCrypto && assetType != AssetTypeStock {
		return nil, ErrInvalidAssetType
	}
	return s.repo.AssetsByType(ctx, assetType)
}

func (s *catalogService) AllAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.AllAssets(ctx)
}
