package app

import (
	"context"

	"github.com/oakmart/storefront-api/internal/domain"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}
