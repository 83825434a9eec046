package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/config"
	"github.com/plutov/paypal/v4"
)

var client *paypal.Client

// TokenSource supplies a bearer token for outgoing processor calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// GetPayPalClient returns a shared PayPal SDK client for the configured
// environment, creating it and fetching an initial access token on first
// use.
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if client != nil {
		return client, nil
	}

	apiBase := APIBaseForEnv(cfg.PaypalEnv)
	if apiBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	client = c
	return c, nil
}

// PayPalTokenSource acquires bearer tokens through the SDK client, which
// caches and refreshes them internally.
type PayPalTokenSource struct {
	Client *paypal.Client
}

// Token implements TokenSource.
func (ts *PayPalTokenSource) Token(ctx context.Context) (string, error) {
	response, err := ts.Client.GetAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting access token: [%w]", err)
	}
	return response.Token, nil
}

// APIBaseForEnv maps the configured environment name onto the processor API
// base URL.
func APIBaseForEnv(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
