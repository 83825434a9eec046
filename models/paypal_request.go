package models

// Outgoing request payloads. Field names are wire-exact for the processor's
// REST API and must not change. Optional sub-objects are pointers carrying
// omitempty so that an elided object disappears from the payload entirely
// rather than serializing as {}.

// OrderRequest is the body for POST v2/checkout/orders.
type OrderRequest struct {
	Intent             string              `json:"intent,omitempty"`
	PurchaseUnits      []*PurchaseUnit     `json:"purchase_units,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
	Payer              *Payer              `json:"payer,omitempty"`
}

// PurchaseUnit is one sub-payment within an order.
type PurchaseUnit struct {
	ReferenceID        string              `json:"reference_id,omitempty"`
	Description        string              `json:"description,omitempty"`
	ShippingMethod     string              `json:"shipping_method,omitempty"`
	PaymentGroupID     string              `json:"payment_group_id,omitempty"`
	CustomID           string              `json:"custom_id,omitempty"`
	InvoiceID          string              `json:"invoice_id,omitempty"`
	SoftDescriptor     string              `json:"soft_descriptor,omitempty"`
	Amount             *Amount             `json:"amount"`
	Payee              *Payee              `json:"payee,omitempty"`
	Items              []*Item             `json:"items,omitempty"`
	Shipping           *Shipping           `json:"shipping,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
}

// Amount is a currency amount, optionally decomposed into named breakdown
// entries which follow the same shape.
type Amount struct {
	CurrencyCode string             `json:"currency_code"`
	Value        string             `json:"value"`
	Breakdown    map[string]*Amount `json:"breakdown,omitempty"`
}

// Item is one purchased item within a purchase unit.
type Item struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku,omitempty"`
	Quantity    string  `json:"quantity"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	UnitAmount  *Amount `json:"unit_amount"`
	Tax         *Amount `json:"tax,omitempty"`
}

// Payee identifies the merchant receiving funds.
type Payee struct {
	MerchantID   string `json:"merchant_id,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// Shipping carries the recipient name and address for a purchase unit.
type Shipping struct {
	Name    *Name    `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Name carries a full recipient name.
type Name struct {
	FullName string `json:"full_name"`
}

// Address is the v2 address shape shared by shipping, billing and payer
// addresses.
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// PaymentInstruction carries the disbursement mode and any platform fees.
type PaymentInstruction struct {
	DisbursementMode string         `json:"disbursement_mode,omitempty"`
	PlatformFees     []*PlatformFee `json:"platform_fees,omitempty"`
}

// PlatformFee is a fee taken by the platform on behalf of a payee.
type PlatformFee struct {
	Amount *Amount `json:"amount"`
	Payee  *Payee  `json:"payee,omitempty"`
}

// ApplicationContext customises the payer experience for an order.
type ApplicationContext struct {
	ReturnURL           string               `json:"return_url,omitempty"`
	CancelURL           string               `json:"cancel_url,omitempty"`
	LandingPage         string               `json:"landing_page,omitempty"`
	Locale              string               `json:"locale,omitempty"`
	UserAction          string               `json:"user_action,omitempty"`
	BrandName           string               `json:"brand_name,omitempty"`
	ShippingPreference  string               `json:"shipping_preference,omitempty"`
	PaymentMethod       *PaymentMethod       `json:"payment_method,omitempty"`
	StoredPaymentSource *StoredPaymentSource `json:"stored_payment_source,omitempty"`
}

// PaymentMethod restricts how the payer may pay.
type PaymentMethod struct {
	PayerSelected          string `json:"payer_selected,omitempty"`
	PayeePreferred         string `json:"payee_preferred,omitempty"`
	StandardEntryClassCode string `json:"standard_entry_class_code,omitempty"`
}

// StoredPaymentSource describes a previously stored payment source.
type StoredPaymentSource struct {
	PaymentInitiator                    string                       `json:"payment_initiator,omitempty"`
	PaymentType                         string                       `json:"payment_type,omitempty"`
	Usage                               string                       `json:"usage,omitempty"`
	PreviousNetworkTransactionReference *NetworkTransactionReference `json:"previous_network_transaction_reference,omitempty"`
}

// NetworkTransactionReference references an earlier network transaction.
type NetworkTransactionReference struct {
	ID      string `json:"id"`
	Date    string `json:"date,omitempty"`
	Network string `json:"network,omitempty"`
}

// ApproveOrderRequest is the body for the authorize and capture endpoints.
type ApproveOrderRequest struct {
	PaymentSource      *PaymentSource      `json:"payment_source,omitempty"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
}

// PaymentSource supplies the instrument used to approve an order.
type PaymentSource struct {
	Card  *Card  `json:"card,omitempty"`
	Token *Token `json:"token,omitempty"`
}

// Card carries raw card details for a card payment source.
type Card struct {
	Name           string   `json:"name"`
	Number         string   `json:"number"`
	Expiry         string   `json:"expiry"`
	SecurityCode   string   `json:"security_code"`
	BillingAddress *Address `json:"billing_address,omitempty"`
}

// Token references a tokenized payment instrument.
type Token struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// Payer describes the order payer.
type Payer struct {
	EmailAddress string     `json:"email_address,omitempty"`
	PayerID      string     `json:"payer_id,omitempty"`
	BirthDate    string     `json:"birth_date,omitempty"`
	Name         *PayerName `json:"name,omitempty"`
	Phone        *Phone     `json:"phone,omitempty"`
	TaxInfo      *TaxInfo   `json:"tax_info,omitempty"`
	Address      *Address   `json:"address,omitempty"`
}

// PayerName carries the payer's given name and surname.
type PayerName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// Phone carries a payer phone number.
type Phone struct {
	PhoneType   string       `json:"phone_type,omitempty"`
	PhoneNumber *PhoneNumber `json:"phone_number"`
}

// PhoneNumber carries the national number for a phone.
type PhoneNumber struct {
	NationalNumber string `json:"national_number"`
}

// TaxInfo carries the payer's tax identifier.
type TaxInfo struct {
	TaxID     string `json:"tax_id"`
	TaxIDType string `json:"tax_id_type,omitempty"`
}

// DoCaptureRequest is the body for POST v2/payments/authorizations/{id}/capture.
type DoCaptureRequest struct {
	Amount             *Amount             `json:"amount,omitempty"`
	InvoiceID          string              `json:"invoice_id,omitempty"`
	FinalCapture       *bool               `json:"final_capture,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	NoteToPayer        string              `json:"note_to_payer,omitempty"`
}

// RefundRequest is the body for POST v2/payments/captures/{id}/refund.
type RefundRequest struct {
	Amount      *Amount `json:"amount,omitempty"`
	InvoiceID   string  `json:"invoice_id,omitempty"`
	NoteToPayer string  `json:"note_to_payer,omitempty"`
}

// PatchOperation is one typed edit in a PATCH v2/checkout/orders/{id} body.
// Value carries the shape selected by the patch dispatcher for the target
// path.
type PatchOperation struct {
	Op    string      `json:"op,omitempty"`
	Path  string      `json:"path"`
	From  string      `json:"from,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// AgreementTokenRequest is the body for POST v1/billing-agreements/agreement-tokens.
type AgreementTokenRequest struct {
	Description        string            `json:"description,omitempty"`
	MerchantCustomData string            `json:"merchant_custom_data,omitempty"`
	Payer              *AgreementPayer   `json:"payer"`
	Plan               *AgreementPlan    `json:"plan"`
	ShippingAddress    *AgreementAddress `json:"shipping_address,omitempty"`
}

// AgreementPayer describes the payer of a billing agreement.
type AgreementPayer struct {
	PaymentMethod string              `json:"payment_method,omitempty"`
	PayerInfo     *AgreementPayerInfo `json:"payer_info,omitempty"`
}

// AgreementPayerInfo carries additional payer details for an agreement.
type AgreementPayerInfo struct {
	Email          string            `json:"email,omitempty"`
	Suffix         string            `json:"suffix,omitempty"`
	FirstName      string            `json:"first_name,omitempty"`
	LastName       string            `json:"last_name,omitempty"`
	PayerID        string            `json:"payer_id,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	BillingAddress *AgreementAddress `json:"billing_address,omitempty"`
}

// AgreementPlan describes the agreement plan and the merchant's preferences.
type AgreementPlan struct {
	Type                string               `json:"type,omitempty"`
	MerchantPreferences *MerchantPreferences `json:"merchant_preferences"`
}

// MerchantPreferences carries the merchant's agreement preferences.
type MerchantPreferences struct {
	ReturnURL                             string   `json:"return_url"`
	CancelURL                             string   `json:"cancel_url"`
	AcceptedPaymentType                   string   `json:"accepted_pymt_type,omitempty"`
	SkipShippingAddress                   *bool    `json:"skip_shipping_address"`
	ImmutableShippingAddress              *bool    `json:"immutable_shipping_address,omitempty"`
	ExperienceID                          string   `json:"experience_id,omitempty"`
	NotifyURL                             string   `json:"notify_url,omitempty"`
	ExternalSelectedFundingInstrumentType string   `json:"external_selected_funding_instrument_type,omitempty"`
	AcceptedLegalCountryCodes             []string `json:"accepted_legal_country_codes,omitempty"`
}

// AgreementAddress is the v1 agreement address shape.
type AgreementAddress struct {
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	CountryCode   string `json:"country_code"`
	RecipientName string `json:"recipient_name,omitempty"`
}

// AgreementApprovalRequest is the body for POST v1/billing-agreements/agreements.
type AgreementApprovalRequest struct {
	TokenID string `json:"token_id"`
}

// AgreementPatch is one typed edit in a PATCH v1/billing-agreements/agreements/{id} body.
type AgreementPatch struct {
	Op    string               `json:"op"`
	Path  string               `json:"path"`
	From  string               `json:"from,omitempty"`
	Value *AgreementPatchValue `json:"value"`
}

// AgreementPatchValue is the value shape accepted by agreement patches.
type AgreementPatchValue struct {
	Description        string `json:"description,omitempty"`
	MerchantCustomData string `json:"merchant_custom_data,omitempty"`
	NotifyURL          string `json:"notify_url,omitempty"`
}

// CancelAgreementRequest is the body for POST v1/billing-agreements/agreements/{id}/cancel.
type CancelAgreementRequest struct {
	Note string `json:"note,omitempty"`
}
