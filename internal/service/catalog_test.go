package service

import (
	"context"
	"errors"
	"testing"

	"assetpulse/internal/domain/models"
)

type fakeCatalogRepo struct {
	fakeAssetsRepo
	byType []models.Asset
	all    []models.Asset
}

func (f *fakeCatalogRepo) AssetsByType(_ context.Context, _ string) ([]models.Asset, error) {
	return f.byType, nil
}

func (f *fakeCatalogRepo) AllAssets(_ context.Context) ([]models.Asset, error) {
	return f.all, nil
}

func TestCatalogService(t *testing.T) {
	repo := &fakeCatalogRepo{
		byType: []models.Asset{{AssetType: "crypto", Symbol: "BTC"}},
		all:    []models.Asset{{AssetType: "crypto", Symbol: "BTC"}, {AssetType: "stock", Symbol: "AAPL"}},
	}
	svc := NewCatalogService(repo)

	if _, err := svc.AssetsByType(context.Background(), "fx"); !errors.Is(err, ErrInvalidAssetType) {
		t.Fatalf("want ErrInvalidAssetType, got %v", err)
	}

	out, err := svc.AssetsByType(context.Background(), "crypto")
	if err != nil || len(out) != 1 || out[0].Symbol != "BTC" {
		t.Fatalf("AssetsByType: out=%+v err=%v", out, err)
	}

	all, err := svc.AllAssets(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("AllAssets: out=%+v err=%v", all, err)
	}
}
