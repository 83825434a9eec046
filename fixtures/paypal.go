package fixtures

import "github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"

// GetOrderOptions returns a minimal valid create-order input with a single
// purchase unit.
func GetOrderOptions() *models.OrderOptions {
	return &models.OrderOptions{
		PurchaseUnits: []models.PurchaseUnitOptions{
			{
				ReferenceID: "camera_shop_seller_1",
				Amount: &models.AmountOptions{
					CurrencyCode: "USD",
					Value:        "25.00",
				},
			},
		},
	}
}

// GetBreakdownAmountOptions returns an amount with a one-level breakdown.
func GetBreakdownAmountOptions() *models.AmountOptions {
	return &models.AmountOptions{
		CurrencyCode: "USD",
		Value:        "25.00",
		Breakdown: map[string]models.AmountOptions{
			"item_total": {CurrencyCode: "USD", Value: "20.00"},
			"shipping":   {CurrencyCode: "USD", Value: "5.00"},
		},
	}
}

// GetBillingAgreementOptions returns a minimal valid agreement token input.
func GetBillingAgreementOptions() *models.BillingAgreementOptions {
	return &models.BillingAgreementOptions{
		Description: "Billing agreement for repeat purchases",
		Payer:       &models.AgreementPayerOptions{PaymentMethod: "PAYPAL"},
		Plan: &models.AgreementPlanOptions{
			Type: "MERCHANT_INITIATED_BILLING",
			MerchantPreferences: &models.MerchantPreferencesOptions{
				ReturnURL:           "https://example.com/return",
				CancelURL:           "https://example.com/cancel",
				SkipShippingAddress: BoolPointer(true),
			},
		},
	}
}

// GetCreatedOrderResponse returns the processor body for a newly created
// order.
func GetCreatedOrderResponse() string {
	return `{"id":"5O190127TN364715T","status":"CREATED","links":[{"href":"https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T","rel":"self","method":"GET"}]}`
}

// GetCompletedCaptureResponse returns the processor body for a completed
// capture.
func GetCompletedCaptureResponse() string {
	return `{"id":"2GG279541U471931P","status":"COMPLETED"}`
}

// GetUnprocessableEntityResponse returns the processor body for a rejected
// order, with a named error and details.
func GetUnprocessableEntityResponse() string {
	return `{"name":"UNPROCESSABLE_ENTITY","message":"The requested action could not be performed, semantically incorrect, or failed business validation.","debug_id":"b6b9a374802ea","details":[{"issue":"ORDER_ALREADY_CAPTURED","description":"Order already captured."}]}`
}

// GetResourceNotFoundResponse returns the processor body for a missing
// resource.
func GetResourceNotFoundResponse() string {
	return `{"name":"RESOURCE_NOT_FOUND","message":"The specified resource does not exist.","debug_id":"8d41f565c9a34"}`
}

// BoolPointer returns a pointer to the supplied bool.
func BoolPointer(b bool) *bool {
	return &b
}
