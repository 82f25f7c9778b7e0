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
	"github.com/oakmart/storefront-api/internal/metrics"
)

// CheckoutRunner is the minimal interface needed to run a checkout.
type CheckoutRunner interface {
	Checkout(ctx context.Context, in app.CheckoutInput) (domain.Order, error)
}

// HandleCheckout returns the handler for POST /checkout. Any workflow
// outcome, a declined payment included, answers 200; callers must
// inspect the status field.
func HandleCheckout(svc CheckoutRunner, logger *zap.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.CustomerID == "" || req.PaymentToken == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "customer_id and payment_token are required")
			return
		}

		order, err := svc.Checkout(r.Context(), app.CheckoutInput{
			CustomerID:   req.CustomerID,
			PaymentToken: req.PaymentToken,
		})
		if err != nil {
			var stockErr *domain.InsufficientStockError
			switch {
			case errors.As(err, &stockErr):
				countCheckout(m, metrics.OutcomeRejected)
				writeError(w, http.StatusBadRequest, codeInsufficientStock, stockErr.Error())
			case errors.Is(err, domain.ErrCartEmpty):
				countCheckout(m, metrics.OutcomeRejected)
				writeError(w, http.StatusBadRequest, codeCartEmpty, err.Error())
			case errors.Is(err, domain.ErrCustomerIDRequired), errors.Is(err, domain.ErrPaymentTokenRequired):
				countCheckout(m, metrics.OutcomeRejected)
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
			default:
				countCheckout(m, metrics.OutcomeError)
				writeInternal(w, r, logger, err)
			}
			return
		}

		if order.Status == domain.OrderStatusPaid {
			countCheckout(m, metrics.OutcomePaid)
		} else {
			countCheckout(m, metrics.OutcomeFailed)
		}

		respondJSON(w, http.StatusOK, checkoutResponse{
			OrderID:    order.ID,
			Status:     string(order.Status),
			Total:      money{order.Total},
			CreatedUTC: order.CreatedAt,
		})
	}
}

func countCheckout(m *metrics.Metrics, outcome string) {
	if m != nil {
		m.CheckoutAttempts.WithLabelValues(outcome).Inc()
	}
}

type checkoutRequest struct {
	CustomerID   string `json:"customer_id"`
	PaymentToken string `json:"payment_token"`
}

type checkoutResponse struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	Total      money     `json:"total"`
	CreatedUTC time.Time `json:"created_utc"`
}
