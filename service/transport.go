package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// HTTPTransport is the concrete transport collaborator. It owns the only
// blocking call in a gateway operation; cancellation and timeouts are the
// caller's context and client settings.
type HTTPTransport struct {
	APIBase     string
	TokenSource TokenSource
	HTTPClient  *http.Client
}

// Commit sends one request to the processor and classifies the raw response.
// Caller-supplied headers are forwarded unmodified and may override the
// defaults set here.
func (t *HTTPTransport) Commit(ctx context.Context, method, path string, body interface{}, headers map[string]string) (*models.PaymentOutcome, error) {
	var requestBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request body: [%w]", err)
		}
		requestBody = bytes.NewBuffer(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, t.APIBase+"/"+path, requestBody)
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%w]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")

	if t.TokenSource != nil {
		token, err := t.TokenSource.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("error acquiring bearer token: [%w]", err)
		}
		request.Header.Set("authorization", "Bearer "+token)
	}

	for key, value := range headers {
		request.Header.Set(key, value)
	}

	httpClient := t.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to PayPal: [%w]", err)
	}

	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%w]", err)
	}

	outcome, err := ClassifyResponse(resp.StatusCode, responseBody)
	if err != nil {
		return nil, err
	}

	log.Info("PayPal response", log.Data{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"success": outcome.Success,
	})

	return outcome, nil
}
