package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// CreateOrder builds and posts the create-order payload.
func (pp *PayPalService) CreateOrder(ctx context.Context, intent string, opts *models.OrderOptions) (*models.PaymentOutcome, error) {
	body, err := mappers.MapOrder(intent, opts, pp.Resolver)
	if err != nil {
		return nil, err
	}

	var headers map[string]string
	if opts != nil {
		headers = opts.Headers
	}
	return pp.Transport.Commit(ctx, http.MethodPost, "v2/checkout/orders", body, headers)
}

// AuthorizeOrder places an authorization hold against an approved order.
func (pp *PayPalService) AuthorizeOrder(ctx context.Context, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "order_id", Value: orderID}); err != nil {
		return nil, err
	}

	body, opts, err := approveOrderBody(opts, pp.Resolver)
	if err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v2/checkout/orders/%s/authorize", orderID), body, opts.Headers)
}

// CaptureOrder captures the funds for an approved order.
func (pp *PayPalService) CaptureOrder(ctx context.Context, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "order_id", Value: orderID}); err != nil {
		return nil, err
	}

	body, opts, err := approveOrderBody(opts, pp.Resolver)
	if err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v2/checkout/orders/%s/capture", orderID), body, opts.Headers)
}

// HandleApprove runs the post-approval operation selected by the caller's
// operator, either an authorization or an immediate capture.
func (pp *PayPalService) HandleApprove(ctx context.Context, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
	var operator string
	if opts != nil {
		operator = opts.Operator
	}
	if err := mappers.Requires(
		mappers.Required{Key: "operator_required_id", Value: orderID},
		mappers.Required{Key: "operator", Value: operator},
	); err != nil {
		return nil, err
	}

	if operator == "authorize" {
		return pp.AuthorizeOrder(ctx, orderID, opts)
	}
	return pp.CaptureOrder(ctx, orderID, opts)
}

// UpdateOrder applies an ordered list of edits to an existing order.
func (pp *PayPalService) UpdateOrder(ctx context.Context, orderID string, edits []models.PatchOperationOptions, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(
		mappers.Required{Key: "order_id", Value: orderID},
		mappers.Required{Key: "body", Value: edits},
	); err != nil {
		return nil, err
	}

	body, err := mappers.MapPatchOperations(edits, pp.Resolver)
	if err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodPatch, fmt.Sprintf("v2/checkout/orders/%s", orderID), body, headers)
}

// GetOrderDetails reads an order resource.
func (pp *PayPalService) GetOrderDetails(ctx context.Context, orderID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "order_id", Value: orderID}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v2/checkout/orders/%s", orderID), nil, headers)
}

// approveOrderBody assembles the shared authorize/capture body. The
// processor expects an empty object rather than no body when neither a
// payment source nor an application context is supplied.
func approveOrderBody(opts *models.ApproveOrderOptions, resolver mappers.CurrencyResolver) (*models.ApproveOrderRequest, *models.ApproveOrderOptions, error) {
	if opts == nil {
		opts = &models.ApproveOrderOptions{}
	}

	body := &models.ApproveOrderRequest{}

	if opts.PaymentSource != nil {
		source, err := mappers.MapPaymentSource(opts.PaymentSource)
		if err != nil {
			return nil, nil, err
		}
		body.PaymentSource = source
	}

	if opts.ApplicationContext != nil {
		appContext, err := mappers.MapApplicationContext(opts.ApplicationContext)
		if err != nil {
			return nil, nil, err
		}
		body.ApplicationContext = appContext
	}

	return body, opts, nil
}
