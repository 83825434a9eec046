package mappers

import "fmt"

// EnumSet is a closed set of legal wire values for one field. Each set below
// is versioned against the processor's documented schema and must be kept in
// sync with it.
type EnumSet []string

// Contains reports whether v is a member of the set.
func (s EnumSet) Contains(v string) bool {
	for _, allowed := range s {
		if allowed == v {
			return true
		}
	}
	return false
}

// Filter returns v unchanged when it is a member of the set, and the empty
// string when it is absent or unknown. An unknown value is dropped from the
// outgoing payload, it is not an error.
func (s EnumSet) Filter(v string) string {
	if s.Contains(v) {
		return v
	}
	return ""
}

// FilterStrict behaves like Filter for absent and legal values but returns an
// error naming the field when a supplied value is not a member of the set.
// The endpoint builders keep the permissive Filter; callers wanting rejection
// over silent dropping can validate with this first.
func (s EnumSet) FilterStrict(field, v string) (string, error) {
	if v == "" {
		return "", nil
	}
	if !s.Contains(v) {
		return "", fmt.Errorf("value %q is not allowed for %s", v, field)
	}
	return v, nil
}

var (
	// AllowedIntent covers the order intents.
	AllowedIntent = EnumSet{"CAPTURE", "AUTHORIZE"}

	// AllowedLandingPage covers application_context.landing_page.
	AllowedLandingPage = EnumSet{"LOGIN", "BILLING", "NO_PREFERENCE"}

	// AllowedUserAction covers application_context.user_action.
	AllowedUserAction = EnumSet{"CONTINUE", "PAY_NOW"}

	// AllowedShippingPreference covers application_context.shipping_preference.
	AllowedShippingPreference = EnumSet{"GET_FROM_FILE", "NO_SHIPPING", "SET_PROVIDED_ADDRESS"}

	// AllowedPaymentInitiator covers stored_payment_source.payment_initiator.
	AllowedPaymentInitiator = EnumSet{"CUSTOMER", "MERCHANT"}

	// AllowedPaymentType covers stored_payment_source.payment_type.
	AllowedPaymentType = EnumSet{"ONE_TIME", "RECURRING", "UNSCHEDULED"}

	// AllowedUsage covers stored_payment_source.usage.
	AllowedUsage = EnumSet{"FIRST", "SUBSEQUENT", "DERIVED"}

	// AllowedNetwork covers previous_network_transaction_reference.network.
	AllowedNetwork = EnumSet{
		"VISA", "MASTERCARD", "DISCOVER", "AMEX", "SOLO", "JCB", "STAR",
		"DELTA", "SWITCH", "MAESTRO", "CB_NATIONALE", "CONFIGOGA",
		"CONFIDIS", "ELECTRON", "CETELEM", "CHINA_UNION_PAY",
	}

	// AllowedPayeePreferred covers payment_method.payee_preferred.
	AllowedPayeePreferred = EnumSet{"UNRESTRICTED", "IMMEDIATE_PAYMENT_REQUIRED"}

	// AllowedStandardEntryClass covers payment_method.standard_entry_class_code.
	AllowedStandardEntryClass = EnumSet{"TEL", "WEB", "CCD", "PPD"}

	// AllowedDisbursementMode covers payment_instruction.disbursement_mode.
	AllowedDisbursementMode = EnumSet{"INSTANT", "DELAYED"}

	// AllowedItemCategory covers item.category.
	AllowedItemCategory = EnumSet{"DIGITAL_GOODS", "PHYSICAL_GOODS", "DONATION"}

	// AllowedPayerPaymentMethod covers the billing-agreement payer method.
	AllowedPayerPaymentMethod = EnumSet{"PAYPAL"}

	// AllowedPlanType covers plan.type on agreement tokens.
	AllowedPlanType = EnumSet{
		"MERCHANT_INITIATED_BILLING",
		"MERCHANT_INITIATED_BILLING_SINGLE_AGREEMENT",
		"CHANNEL_INITIATED_BILLING",
		"CHANNEL_INITIATED_BILLING_SINGLE_AGREEMENT",
		"RECURRING_PAYMENTS",
		"PRE_APPROVED_PAYMENTS",
	}

	// AllowedAcceptedPaymentType covers merchant_preferences.accepted_pymt_type.
	AllowedAcceptedPaymentType = EnumSet{"INSTANT", "ECHECK", "ANY"}

	// AllowedExternalFunding covers external_selected_funding_instrument_type.
	AllowedExternalFunding = EnumSet{"CREDIT", "PAY_UPON_INVOICE"}

	// AllowedTokenType covers payment_source.token.type.
	AllowedTokenType = EnumSet{"BILLING_AGREEMENT"}

	// AllowedPhoneType covers payer.phone.phone_type.
	AllowedPhoneType = EnumSet{"FAX", "HOME", "MOBILE", "OTHER", "PAGER"}

	// AllowedTaxIDType covers payer.tax_info.tax_id_type.
	AllowedTaxIDType = EnumSet{"BR_CPF", "BR_CNPJ"}

	// AllowedPatchOp covers the patch operation verbs.
	AllowedPatchOp = EnumSet{"add", "remove", "replace", "move", "copy", "test"}
)
