package mappers

import (
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// MapAgreementToken assembles the billing-agreement token payload. Payer and
// plan are mandatory; the shipping address is mapped only when supplied.
func MapAgreementToken(opts *models.BillingAgreementOptions) (*models.AgreementTokenRequest, error) {
	if opts == nil {
		opts = &models.BillingAgreementOptions{}
	}

	if err := Requires(
		Required{"payer", opts.Payer},
		Required{"plan", opts.Plan},
	); err != nil {
		return nil, err
	}

	request := &models.AgreementTokenRequest{
		Description:        opts.Description,
		MerchantCustomData: opts.MerchantCustomData,
	}

	payer, err := mapAgreementPayer(opts.Payer)
	if err != nil {
		return nil, err
	}
	request.Payer = payer

	plan, err := mapAgreementPlan(opts.Plan)
	if err != nil {
		return nil, err
	}
	request.Plan = plan

	if opts.ShippingAddress != nil {
		address, err := MapAgreementAddress(opts.ShippingAddress)
		if err != nil {
			return nil, err
		}
		request.ShippingAddress = address
	}

	return request, nil
}

func mapAgreementPayer(opts *models.AgreementPayerOptions) (*models.AgreementPayer, error) {
	payer := &models.AgreementPayer{
		PaymentMethod: AllowedPayerPaymentMethod.Filter(opts.PaymentMethod),
	}

	if opts.PayerInfo != nil {
		info, err := mapAgreementPayerInfo(opts.PayerInfo)
		if err != nil {
			return nil, err
		}
		payer.PayerInfo = info
	}

	if *payer == (models.AgreementPayer{}) {
		return nil, nil
	}
	return payer, nil
}

func mapAgreementPayerInfo(opts *models.AgreementPayerInfoOptions) (*models.AgreementPayerInfo, error) {
	info := &models.AgreementPayerInfo{
		Email:     opts.Email,
		Suffix:    opts.Suffix,
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
		PayerID:   opts.PayerID,
		Phone:     opts.Phone,
	}

	if opts.BillingAddress != nil {
		address, err := MapAgreementAddress(opts.BillingAddress)
		if err != nil {
			return nil, err
		}
		info.BillingAddress = address
	}

	if *info == (models.AgreementPayerInfo{}) {
		return nil, nil
	}
	return info, nil
}

func mapAgreementPlan(opts *models.AgreementPlanOptions) (*models.AgreementPlan, error) {
	if err := Requires(Required{"type", opts.Type}); err != nil {
		return nil, err
	}

	plan := &models.AgreementPlan{Type: AllowedPlanType.Filter(opts.Type)}

	preferences, err := mapMerchantPreferences(opts.MerchantPreferences)
	if err != nil {
		return nil, err
	}
	plan.MerchantPreferences = preferences

	return plan, nil
}

func mapMerchantPreferences(opts *models.MerchantPreferencesOptions) (*models.MerchantPreferences, error) {
	if opts == nil {
		opts = &models.MerchantPreferencesOptions{}
	}

	if err := Requires(
		Required{"return_url", opts.ReturnURL},
		Required{"cancel_url", opts.CancelURL},
		Required{"skip_shipping_address", opts.SkipShippingAddress},
	); err != nil {
		return nil, err
	}

	return &models.MerchantPreferences{
		ReturnURL:                             opts.ReturnURL,
		CancelURL:                             opts.CancelURL,
		AcceptedPaymentType:                   AllowedAcceptedPaymentType.Filter(opts.AcceptedPaymentType),
		SkipShippingAddress:                   opts.SkipShippingAddress,
		ImmutableShippingAddress:              opts.ImmutableShippingAddress,
		ExperienceID:                          opts.ExperienceID,
		NotifyURL:                             opts.NotifyURL,
		ExternalSelectedFundingInstrumentType: AllowedExternalFunding.Filter(opts.ExternalSelectedFundingInstrumentType),
		AcceptedLegalCountryCodes:             append([]string{}, opts.AcceptedLegalCountryCodes...),
	}, nil
}

// MapAgreementAddress maps the v1 agreement address shape, which mandates
// line1, city, state, postal code and country code.
func MapAgreementAddress(opts *models.AgreementAddressOptions) (*models.AgreementAddress, error) {
	if err := Requires(
		Required{"line1", opts.Line1},
		Required{"postal_code", opts.PostalCode},
		Required{"country_code", opts.CountryCode},
		Required{"city", opts.City},
		Required{"state", opts.State},
	); err != nil {
		return nil, err
	}

	return &models.AgreementAddress{
		Line1:         opts.Line1,
		Line2:         opts.Line2,
		City:          opts.City,
		State:         opts.State,
		PostalCode:    opts.PostalCode,
		CountryCode:   opts.CountryCode,
		RecipientName: opts.RecipientName,
	}, nil
}

// MapAgreementPatches maps the update-billing-agreement edits, one output
// entry per input edit, order preserved.
func MapAgreementPatches(edits []models.AgreementPatchOptions) ([]models.AgreementPatch, error) {
	patches := make([]models.AgreementPatch, 0, len(edits))

	for i := range edits {
		edit := &edits[i]
		if err := Requires(
			Required{"op", edit.Op},
			Required{"path", edit.Path},
			Required{"value", edit.Value},
		); err != nil {
			return nil, err
		}

		patches = append(patches, models.AgreementPatch{
			Op:   AllowedPatchOp.Filter(edit.Op),
			Path: edit.Path,
			From: edit.From,
			Value: &models.AgreementPatchValue{
				Description:        edit.Value.Description,
				MerchantCustomData: edit.Value.MerchantCustomData,
				NotifyURL:          edit.Value.NotifyURL,
			},
		})
	}

	return patches, nil
}
