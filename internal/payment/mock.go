// Package payment provides the payment processor collaborator. The
// checkout workflow treats it as always-responding; retry, timeout and
// idempotency-key handling belong on this side of the boundary, not in
// the orchestrator.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oakmart/storefront-api/internal/domain"
)

// OutcomeSource decides whether a charge is approved. Pluggable so the
// demo and tests can force declines deterministically.
type OutcomeSource interface {
	Outcome(token string) (approved bool, reason string)
}

// AlwaysApprove approves every charge.
type AlwaysApprove struct{}

func (AlwaysApprove) Outcome(string) (bool, string) {
	return true, ""
}

// DeclineByPrefix declines any token carrying the configured prefix.
// Useful for exercising the failed-order path end to end.
type DeclineByPrefix struct {
	Prefix string
}

func (d DeclineByPrefix) Outcome(token string) (bool, string) {
	if d.Prefix != "" && len(token) >= len(d.Prefix) && token[:len(d.Prefix)] == d.Prefix {
		return false, "card declined"
	}
	return true, ""
}

// MockProcessor simulates a payment provider.
type MockProcessor struct {
	source  OutcomeSource
	latency time.Duration
}

func NewMockProcessor(source OutcomeSource, opts ...MockProcessorOption) *MockProcessor {
	p := &MockProcessor{source: source}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type MockProcessorOption func(*MockProcessor)

// WithLatency simulates provider round-trip time before the outcome is
// reported.
func WithLatency(d time.Duration) MockProcessorOption {
	return func(p *MockProcessor) {
		if d > 0 {
			p.latency = d
		}
	}
}

// Charge reports the configured outcome. Cancellation is honored both
// before and during the simulated round trip.
func (p *MockProcessor) Charge(ctx context.Context, _ decimal.Decimal, _, token string) (domain.PaymentOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.PaymentOutcome{}, err
	}
	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.PaymentOutcome{}, ctx.Err()
		case <-timer.C:
		}
	}

	approved, reason := p.source.Outcome(token)
	if !approved {
		return domain.PaymentOutcome{Succeeded: false, Reason: reason}, nil
	}
	return domain.PaymentOutcome{
		Succeeded:   true,
		ProviderRef: "ch_" + uuid.NewString(),
	}, nil
}
