package mappers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// singleValueSegments are the path targets whose patch value is copied
// verbatim rather than mapped.
var singleValueSegments = EnumSet{
	"custom_id", "description", "soft_descriptor", "invoice_id", "intent", "email_address",
}

// typedSegments are the path targets with a dedicated value mapper.
var typedSegments = EnumSet{"amount", "name", "address", "payment_instruction"}

// MapPatchOperations maps an ordered list of generic edits into typed patch
// payloads. Input order is preserved: the processor applies patches
// sequentially, so reordering is not safe.
func MapPatchOperations(edits []models.PatchOperationOptions, resolver CurrencyResolver) ([]models.PatchOperation, error) {
	patches := make([]models.PatchOperation, 0, len(edits))

	for i := range edits {
		edit := &edits[i]
		if err := Requires(
			Required{"op", edit.Op},
			Required{"path", edit.Path},
			Required{"value", edit.Value},
		); err != nil {
			return nil, err
		}

		patch := models.PatchOperation{
			Op:   AllowedPatchOp.Filter(edit.Op),
			Path: edit.Path,
			From: edit.From,
		}

		value, err := mapPatchValue(edit.Path, edit.Value, resolver)
		if err != nil {
			return nil, err
		}
		patch.Value = value

		patches = append(patches, patch)
	}

	return patches, nil
}

// mapPatchValue chooses the value mapper for an edit by inspecting the
// target path. This is a deliberate simplification of JSON-Patch semantics:
// the update endpoint only defines patches against purchase-unit fields, so
// dispatch is over that finite set of path shapes, not general JSON-Pointer
// evaluation. Anything unrecognized is treated as a whole purchase unit.
func mapPatchValue(path string, value interface{}, resolver CurrencyResolver) (interface{}, error) {
	switch segment := patchTargetType(path); segment {
	case "amount":
		opts := &models.AmountOptions{}
		if !coerce(value, opts) {
			return nil, invalidPatchValue(path, "amount")
		}
		return MapAmount(opts, resolver)

	case "name":
		opts := &models.NameOptions{}
		if !coerce(value, opts) {
			return nil, invalidPatchValue(path, "name")
		}
		return MapName(opts), nil

	case "address":
		opts := &models.AddressOptions{}
		if !coerce(value, opts) {
			return nil, invalidPatchValue(path, "shipping address")
		}
		return MapShippingAddress(opts)

	case "payment_instruction":
		opts := &models.PaymentInstructionOptions{}
		if !coerce(value, opts) {
			return nil, invalidPatchValue(path, "payment instruction")
		}
		return MapPaymentInstruction(opts, resolver)

	case "":
		opts := &models.PurchaseUnitOptions{}
		if !coerce(value, opts) {
			return nil, invalidPatchValue(path, "purchase unit")
		}
		return MapPurchaseUnit(opts, resolver)

	default:
		// single-value target, copied verbatim
		return value, nil
	}
}

// patchTargetType walks the path segments from the end and returns the first
// recognized target type. Walking past the trailing segment lets a path like
// .../amount/value dispatch on amount. An empty result means no recognized
// target, which dispatches to the full purchase-unit mapper.
func patchTargetType(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if typedSegments.Contains(segments[i]) || singleValueSegments.Contains(segments[i]) {
			return segments[i]
		}
	}
	return ""
}

// coerce fills target from value, accepting either the typed options pointer
// itself or the generic map a JSON-decoded request body carries.
func coerce(value, target interface{}) bool {
	if value == nil {
		return false
	}
	if reflect.TypeOf(value) == reflect.TypeOf(target) {
		reflect.ValueOf(target).Elem().Set(reflect.ValueOf(value).Elem())
		return true
	}
	fields, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return false
	}
	return json.Unmarshal(b, target) == nil
}

func invalidPatchValue(path, want string) error {
	return fmt.Errorf("unsupported patch value for path %q, expected %s", path, want)
}
