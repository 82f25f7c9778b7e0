package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/domain"
)

type StockReader interface {
	GetStock(ctx context.Context, sku string) (domain.InventoryRecord, error)
}

// HandleGetStock returns the handler for GET /inventory/{sku}.
func HandleGetStock(svc StockReader, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := chi.URLParam(r, "sku")

		rec, err := svc.GetStock(r.Context(), sku)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				writeError(w, http.StatusNotFound, codeProductNotFound, err.Error())
				return
			}
			writeInternal(w, r, logger, err)
			return
		}

		respondJSON(w, http.StatusOK, stockResponse{
			SKU:      rec.SKU,
			Quantity: rec.Quantity,
		})
	}
}

type stockResponse struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}
