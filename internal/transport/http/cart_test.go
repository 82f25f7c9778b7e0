package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/app"
	"github.com/oakmart/storefront-api/internal/domain"
)

func TestHandleAddCartItem(t *testing.T) {
	t.Parallel()

	line := domain.CartLine{
		SKU:       "MUG-CLASSIC",
		Name:      "Classic Mug",
		UnitPrice: decimal.RequireFromString("12.50"),
		Quantity:  2,
		CreatedAt: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		body           string
		line           domain.CartLine
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "created",
			body:           `{"customer_id":"cust-1","sku":"MUG-CLASSIC","quantity":2}`,
			line:           line,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"unit_price":"12.50"`,
		},
		{
			name:           "invalid body",
			body:           `nope`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidRequestBody,
		},
		{
			name:           "missing sku",
			body:           `{"customer_id":"cust-1","quantity":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeMissingRequiredField,
		},
		{
			name:           "invalid quantity",
			body:           `{"customer_id":"cust-1","sku":"MUG-CLASSIC","quantity":0}`,
			serviceErr:     domain.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidQuantity,
		},
		{
			name:           "unknown product",
			body:           `{"customer_id":"cust-1","sku":"GHOST","quantity":1}`,
			serviceErr:     domain.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeProductNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubCartManager{line: tt.line, err: tt.serviceErr}

			req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandleAddCartItem(svc, zap.NewNop()).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleGetCart(t *testing.T) {
	t.Parallel()

	t.Run("returns lines and total", func(t *testing.T) {
		svc := &stubCartManager{
			cart: domain.Cart{
				CustomerID: "cust-1",
				Lines: []domain.CartLine{
					{SKU: "A", Name: "Product A", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
				},
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/cart?customer_id=cust-1", nil)
		rec := httptest.NewRecorder()

		HandleGetCart(svc, zap.NewNop()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"total":"20.00"`) {
			t.Fatalf("expected total 20.00, got %q", body)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		svc := &stubCartManager{err: domain.ErrCustomerIDRequired}

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		rec := httptest.NewRecorder()

		HandleGetCart(svc, zap.NewNop()).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHandleClearCart(t *testing.T) {
	t.Parallel()

	svc := &stubCartManager{}
	req := httptest.NewRequest(http.MethodDelete, "/cart?customer_id=cust-1", nil)
	rec := httptest.NewRecorder()

	HandleClearCart(svc, zap.NewNop()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.cleared != "cust-1" {
		t.Fatalf("expected clear for cust-1, got %q", svc.cleared)
	}
}

type stubCartManager struct {
	line    domain.CartLine
	cart    domain.Cart
	err     error
	cleared string
}

func (s *stubCartManager) AddItem(_ context.Context, _ app.AddItemInput) (domain.CartLine, error) {
	if s.err != nil {
		return domain.CartLine{}, s.err
	}
	return s.line, nil
}

func (s *stubCartManager) GetCart(_ context.Context, _ string) (domain.Cart, error) {
	if s.err != nil {
		return domain.Cart{}, s.err
	}
	return s.cart, nil
}

func (s *stubCartManager) ClearCart(_ context.Context, customerID string) error {
	if s.err != nil {
		return s.err
	}
	s.cleared = customerID
	return nil
}
