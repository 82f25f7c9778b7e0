package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/domain"
)

type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// HandleListProducts returns the handler for GET /products.
func HandleListProducts(svc ProductLister, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context())
		if err != nil {
			writeInternal(w, r, logger, err)
			return
		}

		resp := make([]productResponse, 0, len(products))
		for _, p := range products {
			resp = append(resp, productResponse{
				ID:          p.ID,
				SKU:         p.SKU,
				Name:        p.Name,
				Description: p.Description,
				Price:       money{p.Price},
				CreatedAt:   p.CreatedAt,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

type productResponse struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       money     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
