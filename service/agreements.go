package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// CreateBillingAgreementToken requests a new agreement token for the given
// payer and plan.
func (pp *PayPalService) CreateBillingAgreementToken(ctx context.Context, opts *models.BillingAgreementOptions) (*models.PaymentOutcome, error) {
	body, err := mappers.MapAgreementToken(opts)
	if err != nil {
		return nil, err
	}

	var headers map[string]string
	if opts != nil {
		headers = opts.Headers
	}
	return pp.Transport.Commit(ctx, http.MethodPost, "v1/billing-agreements/agreement-tokens", body, headers)
}

// CreateAgreementForApproval exchanges an approved token for a billing
// agreement.
func (pp *PayPalService) CreateAgreementForApproval(ctx context.Context, tokenID string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "token_id", Value: tokenID}); err != nil {
		return nil, err
	}

	body := &models.AgreementApprovalRequest{TokenID: tokenID}
	return pp.Transport.Commit(ctx, http.MethodPost, "v1/billing-agreements/agreements", body, headers)
}

// UpdateBillingAgreement applies an ordered list of edits to an existing
// agreement.
func (pp *PayPalService) UpdateBillingAgreement(ctx context.Context, agreementID string, edits []models.AgreementPatchOptions, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(
		mappers.Required{Key: "agreement_id", Value: agreementID},
		mappers.Required{Key: "body", Value: edits},
	); err != nil {
		return nil, err
	}

	body, err := mappers.MapAgreementPatches(edits)
	if err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodPatch, fmt.Sprintf("v1/billing-agreements/agreements/%s", agreementID), body, headers)
}

// CancelBillingAgreement cancels an agreement, with an optional note to the
// payer.
func (pp *PayPalService) CancelBillingAgreement(ctx context.Context, agreementID string, opts *models.CancelAgreementOptions) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "agreement_id", Value: agreementID}); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &models.CancelAgreementOptions{}
	}

	body := &models.CancelAgreementRequest{Note: opts.Note}
	return pp.Transport.Commit(ctx, http.MethodPost, fmt.Sprintf("v1/billing-agreements/agreements/%s/cancel", agreementID), body, opts.Headers)
}

// GetBillingAgreementTokenDetails reads an agreement token resource.
func (pp *PayPalService) GetBillingAgreementTokenDetails(ctx context.Context, billingAgreementToken string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "billing_agreement_token", Value: billingAgreementToken}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v1/billing-agreements/agreement-tokens/%s", billingAgreementToken), nil, headers)
}

// GetBillingAgreementDetails reads an agreement resource.
func (pp *PayPalService) GetBillingAgreementDetails(ctx context.Context, billingToken string, headers map[string]string) (*models.PaymentOutcome, error) {
	if err := mappers.Requires(mappers.Required{Key: "billing_token", Value: billingToken}); err != nil {
		return nil, err
	}

	return pp.Transport.Commit(ctx, http.MethodGet, fmt.Sprintf("v1/billing-agreements/agreements/%s", billingToken), nil, headers)
}
