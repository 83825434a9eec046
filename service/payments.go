package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// DoCapture captures the funds held by a previous authorization.
func (pp *PayPalService) DoCapture(ctx context.Context, authorizationID string, opts *models.DoCaptureOptions) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "authorization_id", Value: authorizationID}); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &models.DoCaptureOptions{}
	}

	body := &models.DoCaptureRequest{
		InvoiceID:    opts.InvoiceID,
		FinalCapture: opts.FinalCapture,
		NoteToPayer:  opts.NoteToPayer,
	}

	if opts.Amount != nil {
		amount, err := mappers.MapAmount(opts.Amount, pp.Resolver)
		if err != nil {
			return nil, err
		}
		body.Amount = amount
	}

	if opts.PaymentInstruction != nil {
		instruction, err := mappers.MapPaymentInstruction(opts.PaymentInstruction, pp.Resolver)
		if err != nil {
			return nil, err
		}
		body.PaymentInstruction = instruction
	}

	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v2/payments/authorizations/%s/capture", authorizationID), body, opts.Headers)
}

// RefundCapture refunds a previously captured payment, in full when no
// amount is supplied.
func (pp *PayPalService) RefundCapture(ctx context.Context, captureID string, opts *models.RefundOptions) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "capture_id", Value: captureID}); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &models.RefundOptions{}
	}

	body := &models.RefundRequest{
		InvoiceID:   opts.InvoiceID,
		NoteToPayer: opts.NoteToPayer,
	}

	if opts.Amount != nil {
		amount, err := mappers.MapAmount(opts.Amount, pp.Resolver)
		if err != nil {
			return nil, err
		}
		body.Amount = amount
	}

	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v2/payments/captures/%s/refund", captureID), body, opts.Headers)
}

// VoidAuthorization releases the hold placed by an authorization. The
// endpoint takes an empty body.
func (pp *PayPalService) VoidAuthorization(ctx context.Context, authorizationID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "authorization_id", Value: authorizationID}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v2/payments/authorizations/%s/void", authorizationID), struct{}{}, headers)
}

// GetAuthorizationDetails reads an authorization resource.
func (pp *PayPalService) GetAuthorizationDetails(ctx context.Context, authorizationID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "authorization_id", Value: authorizationID}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v2/payments/authorizations/%s", authorizationID), nil, headers)
}

// GetCaptureDetails reads a capture resource.
func (pp *PayPalService) GetCaptureDetails(ctx context.Context, captureID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "capture_id", Value: captureID}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v2/payments/captures/%s", captureID), nil, headers)
}

// GetRefundDetails reads a refund resource.
func (pp *PayPalService) GetRefundDetails(ctx context.Context, refundID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "refund_id", Value: refundID}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v2/payments/refunds/%s", refundID), nil, headers)
}
