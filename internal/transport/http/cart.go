package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/app"
	"github.com/oakmart/storefront-api/internal/domain"
)

// CartManager is the minimal interface the cart handlers need.
type CartManager interface {
	AddItem(ctx context.Context, in app.AddItemInput) (domain.CartLine, error)
	GetCart(ctx context.Context, customerID string) (domain.Cart, error)
	ClearCart(ctx context.Context, customerID string) error
}

// HandleAddCartItem returns the handler for POST /cart/items.
func HandleAddCartItem(svc CartManager, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCartItemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.CustomerID == "" || req.SKU == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "customer_id and sku are required")
			return
		}

		line, err := svc.AddItem(r.Context(), app.AddItemInput{
			CustomerID: req.CustomerID,
			SKU:        req.SKU,
			Quantity:   req.Quantity,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidQuantity):
				writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
			case errors.Is(err, domain.ErrCustomerIDRequired):
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
			case errors.Is(err, domain.ErrProductNotFound):
				writeError(w, http.StatusNotFound, codeProductNotFound, err.Error())
			default:
				writeInternal(w, r, logger, err)
			}
			return
		}

		respondJSON(w, http.StatusCreated, cartLineResponse{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: money{line.UnitPrice},
			Quantity:  line.Quantity,
			AddedAt:   line.CreatedAt,
		})
	}
}

// HandleGetCart returns the handler for GET /cart.
func HandleGetCart(svc CartManager, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")

		cart, err := svc.GetCart(r.Context(), customerID)
		if err != nil {
			if errors.Is(err, domain.ErrCustomerIDRequired) {
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
				return
			}
			writeInternal(w, r, logger, err)
			return
		}

		resp := cartResponse{
			CustomerID: cart.CustomerID,
			Lines:      make([]cartLineResponse, 0, len(cart.Lines)),
			Total:      money{cart.Total()},
		}
		for _, line := range cart.Lines {
			resp.Lines = append(resp.Lines, cartLineResponse{
				SKU:       line.SKU,
				Name:      line.Name,
				UnitPrice: money{line.UnitPrice},
				Quantity:  line.Quantity,
				AddedAt:   line.CreatedAt,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleClearCart returns the handler for DELETE /cart.
func HandleClearCart(svc CartManager, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")

		if err := svc.ClearCart(r.Context(), customerID); err != nil {
			if errors.Is(err, domain.ErrCustomerIDRequired) {
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
				return
			}
			writeInternal(w, r, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type addCartItemRequest struct {
	CustomerID string `json:"customer_id"`
	SKU        string `json:"sku"`
	Quantity   int    `json:"quantity"`
}

type cartLineResponse struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	UnitPrice money     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type cartResponse struct {
	CustomerID string             `json:"customer_id"`
	Lines      []cartLineResponse `json:"lines"`
	Total      money              `json:"total"`
}
