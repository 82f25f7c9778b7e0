package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/domain"
)

const (
	codeInvalidRequestBody   = "invalid_request_body"
	codeMissingRequiredField = "missing_required_field"
	codeInvalidQuantity      = "invalid_quantity"
	codeCartEmpty            = "cart_empty"
	codeInsufficientStock    = "insufficient_stock"
	codeProductNotFound      = "product_not_found"
	codeOrderNotFound        = "order_not_found"
	codeNotFound             = "not_found"
	codeMethodNotAllowed     = "method_not_allowed"
	codeForbidden            = "forbidden"
	codeStorageUnavailable   = "storage_unavailable"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeInternal maps infrastructure failures to 503 (retry-safe) and
// everything unexpected to 500, logging either with the request id as
// correlation context. Internal detail never reaches the caller.
func writeInternal(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	fields := []zap.Field{
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		logger.Warn("storage unavailable", fields...)
		writeError(w, http.StatusServiceUnavailable, codeStorageUnavailable, "service temporarily unavailable")
		return
	}

	logger.Error("unexpected error", fields...)
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
