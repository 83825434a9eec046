package mappers

import (
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// MapApplicationContext maps the application context. The five enumerated
// sub-fields pass through their allow-lists; the whole object is elided when
// nothing survives.
func MapApplicationContext(opts *models.ApplicationContextOptions) (*models.ApplicationContext, error) {
	appContext := &models.ApplicationContext{
		ReturnURL:          opts.ReturnURL,
		CancelURL:          opts.CancelURL,
		LandingPage:        AllowedLandingPage.Filter(opts.LandingPage),
		Locale:             opts.Locale,
		UserAction:         AllowedUserAction.Filter(opts.UserAction),
		BrandName:          opts.BrandName,
		ShippingPreference: AllowedShippingPreference.Filter(opts.ShippingPreference),
	}

	if opts.PaymentMethod != nil {
		appContext.PaymentMethod = MapPaymentMethod(opts.PaymentMethod)
	}

	if opts.StoredPaymentSource != nil {
		source, err := MapStoredPaymentSource(opts.StoredPaymentSource)
		if err != nil {
			return nil, err
		}
		appContext.StoredPaymentSource = source
	}

	if *appContext == (models.ApplicationContext{}) {
		return nil, nil
	}
	return appContext, nil
}

// MapPaymentMethod maps the payment method block, eliding it when empty.
func MapPaymentMethod(opts *models.PaymentMethodOptions) *models.PaymentMethod {
	method := &models.PaymentMethod{
		PayerSelected:          opts.PayerSelected,
		PayeePreferred:         AllowedPayeePreferred.Filter(opts.PayeePreferred),
		StandardEntryClassCode: AllowedStandardEntryClass.Filter(opts.StandardEntryClassCode),
	}
	if *method == (models.PaymentMethod{}) {
		return nil
	}
	return method
}

// MapStoredPaymentSource maps a stored payment source. The payment initiator
// and payment type must be supplied, then pass through their allow-lists.
func MapStoredPaymentSource(opts *models.StoredPaymentSourceOptions) (*models.StoredPaymentSource, error) {
	if err := Requires(
		Required{"payment_initiator", opts.PaymentInitiator},
		Required{"payment_type", opts.PaymentType},
	); err != nil {
		return nil, err
	}

	source := &models.StoredPaymentSource{
		PaymentInitiator: AllowedPaymentInitiator.Filter(opts.PaymentInitiator),
		PaymentType:      AllowedPaymentType.Filter(opts.PaymentType),
		Usage:            AllowedUsage.Filter(opts.Usage),
	}

	if opts.PreviousNetworkTransactionReference != nil {
		reference, err := mapNetworkTransactionReference(opts.PreviousNetworkTransactionReference)
		if err != nil {
			return nil, err
		}
		source.PreviousNetworkTransactionReference = reference
	}

	if *source == (models.StoredPaymentSource{}) {
		return nil, nil
	}
	return source, nil
}

func mapNetworkTransactionReference(opts *models.NetworkTransactionReferenceOptions) (*models.NetworkTransactionReference, error) {
	if err := Requires(
		Required{"id", opts.ID},
		Required{"network", opts.Network},
	); err != nil {
		return nil, err
	}

	return &models.NetworkTransactionReference{
		ID:      opts.ID,
		Date:    opts.Date,
		Network: AllowedNetwork.Filter(opts.Network),
	}, nil
}
