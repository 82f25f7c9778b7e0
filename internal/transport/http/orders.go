package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/domain"
)

type OrderReader interface {
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
}

// HandleGetOrder returns the handler for GET /orders/{id}.
func HandleGetOrder(svc OrderReader, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, codeOrderNotFound, domain.ErrOrderNotFound.Error())
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
				return
			}
			writeInternal(w, r, logger, err)
			return
		}

		resp := orderResponse{
			ID:         order.ID,
			CustomerID: order.CustomerID,
			Status:     string(order.Status),
			Total:      money{order.Total},
			PaymentRef: order.PaymentRef,
			CreatedUTC: order.CreatedAt,
			Lines:      make([]orderLineResponse, 0, len(order.Lines)),
		}
		for _, line := range order.Lines {
			resp.Lines = append(resp.Lines, orderLineResponse{
				SKU:       line.SKU,
				Name:      line.Name,
				UnitPrice: money{line.UnitPrice},
				Quantity:  line.Quantity,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

type orderResponse struct {
	ID         int64               `json:"id"`
	CustomerID string              `json:"customer_id"`
	Status     string              `json:"status"`
	Total      money               `json:"total"`
	PaymentRef string              `json:"payment_ref,omitempty"`
	CreatedUTC time.Time           `json:"created_utc"`
	Lines      []orderLineResponse `json:"lines"`
}

type orderLineResponse struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice money  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}
