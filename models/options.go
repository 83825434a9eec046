package models

// The option structs in this file are the caller-facing input to the mapping
// layer. They deliberately accept more than the processor will: per-endpoint
// required-ness and enumerated-value rules are applied by the mappers package,
// not here. A zero value means "not supplied" and is never emitted on the
// wire.

// AmountOptions carries a currency amount as supplied by the caller. The
// currency code may be omitted, in which case it is inferred from the value.
type AmountOptions struct {
	CurrencyCode string                   `json:"currency_code,omitempty"`
	Value        string                   `json:"value,omitempty"`
	Breakdown    map[string]AmountOptions `json:"breakdown,omitempty"`
}

// PurchaseUnitOptions describes one sub-payment within an order.
type PurchaseUnitOptions struct {
	ReferenceID        string                     `json:"reference_id,omitempty"`
	Description        string                     `json:"description,omitempty"`
	ShippingMethod     string                     `json:"shipping_method,omitempty"`
	PaymentGroupID     string                     `json:"payment_group_id,omitempty"`
	CustomID           string                     `json:"custom_id,omitempty"`
	InvoiceID          string                     `json:"invoice_id,omitempty"`
	SoftDescriptor     string                     `json:"soft_descriptor,omitempty"`
	Amount             *AmountOptions             `json:"amount,omitempty"`
	Payee              *PayeeOptions              `json:"payee,omitempty"`
	Items              []ItemOptions              `json:"items,omitempty"`
	Shipping           *ShippingOptions           `json:"shipping,omitempty"`
	PaymentInstruction *PaymentInstructionOptions `json:"payment_instruction,omitempty"`
}

// ItemOptions describes one purchased item.
type ItemOptions struct {
	Name        string         `json:"name,omitempty"`
	SKU         string         `json:"sku,omitempty"`
	Quantity    string         `json:"quantity,omitempty"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	UnitAmount  *AmountOptions `json:"unit_amount,omitempty"`
	Tax         *AmountOptions `json:"tax,omitempty"`
}

// PayeeOptions identifies the merchant receiving a payment or fee.
type PayeeOptions struct {
	MerchantID   string `json:"merchant_id,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// ShippingOptions carries the recipient name and shipping address.
type ShippingOptions struct {
	Name    *NameOptions    `json:"name,omitempty"`
	Address *AddressOptions `json:"address,omitempty"`
}

// NameOptions carries a recipient full name.
type NameOptions struct {
	FullName string `json:"full_name,omitempty"`
}

// AddressOptions is used for both shipping-style and billing-style addresses.
// Which fields are mandatory depends on the mapper applied to it.
type AddressOptions struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// PaymentInstructionOptions carries the disbursement mode and platform fees.
type PaymentInstructionOptions struct {
	DisbursementMode string               `json:"disbursement_mode,omitempty"`
	PlatformFees     []PlatformFeeOptions `json:"platform_fees,omitempty"`
}

// PlatformFeeOptions is one platform fee, an amount/payee pair.
type PlatformFeeOptions struct {
	Amount *AmountOptions `json:"amount,omitempty"`
	Payee  *PayeeOptions  `json:"payee,omitempty"`
}

// ApplicationContextOptions customises the payer experience.
type ApplicationContextOptions struct {
	ReturnURL           string                      `json:"return_url,omitempty"`
	CancelURL           string                      `json:"cancel_url,omitempty"`
	LandingPage         string                      `json:"landing_page,omitempty"`
	Locale              string                      `json:"locale,omitempty"`
	UserAction          string                      `json:"user_action,omitempty"`
	BrandName           string                      `json:"brand_name,omitempty"`
	ShippingPreference  string                      `json:"shipping_preference,omitempty"`
	PaymentMethod       *PaymentMethodOptions       `json:"payment_method,omitempty"`
	StoredPaymentSource *StoredPaymentSourceOptions `json:"stored_payment_source,omitempty"`
}

// PaymentMethodOptions customises the payment method for an order.
type PaymentMethodOptions struct {
	PayerSelected          string `json:"payer_selected,omitempty"`
	PayeePreferred         string `json:"payee_preferred,omitempty"`
	StandardEntryClassCode string `json:"standard_entry_class_code,omitempty"`
}

// StoredPaymentSourceOptions describes a previously stored payment source.
type StoredPaymentSourceOptions struct {
	PaymentInitiator                    string                              `json:"payment_initiator,omitempty"`
	PaymentType                         string                              `json:"payment_type,omitempty"`
	Usage                               string                              `json:"usage,omitempty"`
	PreviousNetworkTransactionReference *NetworkTransactionReferenceOptions `json:"previous_network_transaction_reference,omitempty"`
}

// NetworkTransactionReferenceOptions references an earlier network
// transaction made with the stored source.
type NetworkTransactionReferenceOptions struct {
	ID      string `json:"id,omitempty"`
	Date    string `json:"date,omitempty"`
	Network string `json:"network,omitempty"`
}

// PaymentSourceOptions supplies the instrument used to approve an order.
type PaymentSourceOptions struct {
	Card  *CardOptions  `json:"card,omitempty"`
	Token *TokenOptions `json:"token,omitempty"`
}

// CardOptions carries raw card details. Expiry is YYYY-MM.
type CardOptions struct {
	Name           string          `json:"name,omitempty"`
	Number         string          `json:"number,omitempty"`
	Expiry         string          `json:"expiry,omitempty"`
	SecurityCode   string          `json:"security_code,omitempty"`
	BillingAddress *AddressOptions `json:"billing_address,omitempty"`
}

// TokenOptions references a tokenized payment instrument.
type TokenOptions struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
}

// PayerOptions describes the order payer.
type PayerOptions struct {
	EmailAddress string            `json:"email_address,omitempty"`
	PayerID      string            `json:"payer_id,omitempty"`
	BirthDate    string            `json:"birth_date,omitempty"`
	Name         *PayerNameOptions `json:"name,omitempty"`
	Phone        *PhoneOptions     `json:"phone,omitempty"`
	TaxInfo      *TaxInfoOptions   `json:"tax_info,omitempty"`
	Address      *AddressOptions   `json:"address,omitempty"`
}

// PayerNameOptions carries the payer's given name and surname.
type PayerNameOptions struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// PhoneOptions carries a payer phone number.
type PhoneOptions struct {
	PhoneType   string              `json:"phone_type,omitempty"`
	PhoneNumber *PhoneNumberOptions `json:"phone_number,omitempty"`
}

// PhoneNumberOptions carries the national number for a phone.
type PhoneNumberOptions struct {
	NationalNumber string `json:"national_number,omitempty"`
}

// TaxInfoOptions carries the payer's tax identifier.
type TaxInfoOptions struct {
	TaxID     string `json:"tax_id,omitempty"`
	TaxIDType string `json:"tax_id_type,omitempty"`
}

// OrderOptions is the input to create-order.
type OrderOptions struct {
	PurchaseUnits      []PurchaseUnitOptions      `json:"purchase_units,omitempty"`
	PaymentInstruction *PaymentInstructionOptions `json:"payment_instruction,omitempty"`
	ApplicationContext *ApplicationContextOptions `json:"application_context,omitempty"`
	Payer              *PayerOptions              `json:"payer,omitempty"`
	Headers            map[string]string          `json:"-"`
}

// ApproveOrderOptions is the input to the authorize and capture operations.
type ApproveOrderOptions struct {
	Operator           string                     `json:"operator,omitempty"`
	PaymentSource      *PaymentSourceOptions      `json:"payment_source,omitempty"`
	ApplicationContext *ApplicationContextOptions `json:"application_context,omitempty"`
	Headers            map[string]string          `json:"-"`
}

// DoCaptureOptions is the input to capturing a previous authorization.
type DoCaptureOptions struct {
	Amount             *AmountOptions             `json:"amount,omitempty"`
	InvoiceID          string                     `json:"invoice_id,omitempty"`
	FinalCapture       *bool                      `json:"final_capture,omitempty"`
	PaymentInstruction *PaymentInstructionOptions `json:"payment_instruction,omitempty"`
	NoteToPayer        string                     `json:"note_to_payer,omitempty"`
	Headers            map[string]string          `json:"-"`
}

// RefundOptions is the input to refunding a capture.
type RefundOptions struct {
	Amount      *AmountOptions    `json:"amount,omitempty"`
	InvoiceID   string            `json:"invoice_id,omitempty"`
	NoteToPayer string            `json:"note_to_payer,omitempty"`
	Headers     map[string]string `json:"-"`
}

// PatchOperationOptions is one generic edit in an update-order request. The
// concrete type expected in Value depends on the target path; see the patch
// dispatcher.
type PatchOperationOptions struct {
	Op    string      `json:"op,omitempty"`
	Path  string      `json:"path,omitempty"`
	From  string      `json:"from,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// BillingAgreementOptions is the input to creating an agreement token.
type BillingAgreementOptions struct {
	Description        string                   `json:"description,omitempty"`
	MerchantCustomData string                   `json:"merchant_custom_data,omitempty"`
	Payer              *AgreementPayerOptions   `json:"payer,omitempty"`
	Plan               *AgreementPlanOptions    `json:"plan,omitempty"`
	ShippingAddress    *AgreementAddressOptions `json:"shipping_address,omitempty"`
	Headers            map[string]string        `json:"-"`
}

// AgreementPayerOptions describes the payer of a billing agreement.
type AgreementPayerOptions struct {
	PaymentMethod string                     `json:"payment_method,omitempty"`
	PayerInfo     *AgreementPayerInfoOptions `json:"payer_info,omitempty"`
}

// AgreementPayerInfoOptions carries additional payer details.
type AgreementPayerInfoOptions struct {
	Email          string                   `json:"email,omitempty"`
	Suffix         string                   `json:"suffix,omitempty"`
	FirstName      string                   `json:"first_name,omitempty"`
	LastName       string                   `json:"last_name,omitempty"`
	PayerID        string                   `json:"payer_id,omitempty"`
	Phone          string                   `json:"phone,omitempty"`
	BillingAddress *AgreementAddressOptions `json:"billing_address,omitempty"`
}

// AgreementPlanOptions describes the agreement plan.
type AgreementPlanOptions struct {
	Type                string                      `json:"type,omitempty"`
	MerchantPreferences *MerchantPreferencesOptions `json:"merchant_preferences,omitempty"`
}

// MerchantPreferencesOptions carries the merchant's agreement preferences.
type MerchantPreferencesOptions struct {
	ReturnURL                             string   `json:"return_url,omitempty"`
	CancelURL                             string   `json:"cancel_url,omitempty"`
	AcceptedPaymentType                   string   `json:"accepted_pymt_type,omitempty"`
	SkipShippingAddress                   *bool    `json:"skip_shipping_address,omitempty"`
	ImmutableShippingAddress              *bool    `json:"immutable_shipping_address,omitempty"`
	ExperienceID                          string   `json:"experience_id,omitempty"`
	NotifyURL                             string   `json:"notify_url,omitempty"`
	ExternalSelectedFundingInstrumentType string   `json:"external_selected_funding_instrument_type,omitempty"`
	AcceptedLegalCountryCodes             []string `json:"accepted_legal_country_codes,omitempty"`
}

// AgreementAddressOptions is the agreement-style address, which uses the
// older line1/city/state field names.
type AgreementAddressOptions struct {
	Line1         string `json:"line1,omitempty"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
}

// AgreementPatchOptions is one edit in an update-billing-agreement request.
type AgreementPatchOptions struct {
	Op    string                      `json:"op,omitempty"`
	Path  string                      `json:"path,omitempty"`
	From  string                      `json:"from,omitempty"`
	Value *AgreementPatchValueOptions `json:"value,omitempty"`
}

// AgreementPatchValueOptions is the value shape accepted by agreement
// patches.
type AgreementPatchValueOptions struct {
	Description        string `json:"description,omitempty"`
	MerchantCustomData string `json:"merchant_custom_data,omitempty"`
	NotifyURL          string `json:"notify_url,omitempty"`
}

// CancelAgreementOptions is the input to cancelling a billing agreement.
type CancelAgreementOptions struct {
	Note    string            `json:"note,omitempty"`
	Headers map[string]string `json:"-"`
}
