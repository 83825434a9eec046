package service

import (
	"context"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// Transport issues one request to the processor and classifies the raw
// response into a normalized outcome. Implementations own timeouts, retries
// and logging; the mapping layer has no blocking points of its own.
type Transport interface {
	Commit(ctx context.Context, method, path string, body interface{}, headers map[string]string) (*models.PaymentOutcome, error)
}

// PayPalService builds the per-endpoint payloads and hands them to the
// transport collaborator. It holds no per-call state, so a single instance
// may be used concurrently.
type PayPalService struct {
	Transport Transport
	Resolver  mappers.CurrencyResolver
}
