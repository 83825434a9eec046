package mappers

import (
	"testing"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapPatchOperations(t *testing.T) {
	Convey("Op, path and value are mandatory per edit", t, func() {
		_, err := MapPatchOperations([]models.PatchOperationOptions{
			{Path: "/purchase_units/@reference_id=='default'/amount"},
		}, usdResolver)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): op, value")
	})

	Convey("An amount path dispatches to the amount mapper", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:    "replace",
			Path:  "/purchase_units/@reference_id=='default'/amount",
			Value: &models.AmountOptions{Value: "30.00"},
		}}, usdResolver)

		So(err, ShouldBeNil)
		So(patches, ShouldHaveLength, 1)

		amount, ok := patches[0].Value.(*models.Amount)
		So(ok, ShouldBeTrue)
		So(amount.CurrencyCode, ShouldEqual, "USD")
		So(amount.Value, ShouldEqual, "30.00")
	})

	Convey("A path ending below amount still dispatches on amount", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:    "replace",
			Path:  "/purchase_units/@reference_id=='default'/amount/value",
			Value: &models.AmountOptions{CurrencyCode: "USD", Value: "30.00"},
		}}, usdResolver)

		So(err, ShouldBeNil)
		_, ok := patches[0].Value.(*models.Amount)
		So(ok, ShouldBeTrue)
	})

	Convey("A single-value path copies the value verbatim", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:    "replace",
			Path:  "/purchase_units/@reference_id=='default'/custom_id",
			Value: "new-custom-id",
		}}, usdResolver)

		So(err, ShouldBeNil)
		So(patches[0].Value, ShouldEqual, "new-custom-id")
	})

	Convey("An unrecognized path dispatches to the purchase-unit mapper", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:   "add",
			Path: "/purchase_units/@reference_id=='second'",
			Value: &models.PurchaseUnitOptions{
				ReferenceID: "second",
				Amount:      &models.AmountOptions{CurrencyCode: "USD", Value: "5.00"},
			},
		}}, usdResolver)

		So(err, ShouldBeNil)
		unit, ok := patches[0].Value.(*models.PurchaseUnit)
		So(ok, ShouldBeTrue)
		So(unit.ReferenceID, ShouldEqual, "second")
	})

	Convey("A JSON-decoded generic map is coerced into the typed options", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:   "replace",
			Path: "/purchase_units/@reference_id=='default'/amount",
			Value: map[string]interface{}{
				"currency_code": "GBP",
				"value":         "12.50",
			},
		}}, usdResolver)

		So(err, ShouldBeNil)
		amount, ok := patches[0].Value.(*models.Amount)
		So(ok, ShouldBeTrue)
		So(amount.CurrencyCode, ShouldEqual, "GBP")
	})

	Convey("A value of the wrong shape for the path is rejected", t, func() {
		_, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:    "replace",
			Path:  "/purchase_units/@reference_id=='default'/amount",
			Value: 42,
		}}, usdResolver)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "expected amount")
	})

	Convey("An unknown op is dropped while the patch survives", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{{
			Op:    "merge",
			Path:  "/purchase_units/@reference_id=='default'/description",
			Value: "updated",
		}}, usdResolver)

		So(err, ShouldBeNil)
		So(patches[0].Op, ShouldBeEmpty)
		So(patches[0].Path, ShouldEqual, "/purchase_units/@reference_id=='default'/description")
	})

	Convey("Input order is preserved", t, func() {
		patches, err := MapPatchOperations([]models.PatchOperationOptions{
			{Op: "replace", Path: "/purchase_units/@reference_id=='default'/description", Value: "first"},
			{Op: "replace", Path: "/purchase_units/@reference_id=='default'/custom_id", Value: "second"},
			{Op: "replace", Path: "/purchase_units/@reference_id=='default'/invoice_id", Value: "third"},
		}, usdResolver)

		So(err, ShouldBeNil)
		So(patches, ShouldHaveLength, 3)
		So(patches[0].Value, ShouldEqual, "first")
		So(patches[1].Value, ShouldEqual, "second")
		So(patches[2].Value, ShouldEqual, "third")
	})
}

func TestUnitPatchTargetType(t *testing.T) {
	Convey("The first recognized segment from the end wins", t, func() {
		So(patchTargetType("/purchase_units/@reference_id=='x'/amount"), ShouldEqual, "amount")
		So(patchTargetType("/purchase_units/@reference_id=='x'/amount/value"), ShouldEqual, "amount")
		So(patchTargetType("/purchase_units/@reference_id=='x'/shipping/address"), ShouldEqual, "address")
		So(patchTargetType("/purchase_units/@reference_id=='x'/shipping/name"), ShouldEqual, "name")
		So(patchTargetType("/purchase_units/@reference_id=='x'/intent"), ShouldEqual, "intent")
	})

	Convey("A path with no recognized segment maps to the purchase unit", t, func() {
		So(patchTargetType("/purchase_units/@reference_id=='x'"), ShouldBeEmpty)
		So(patchTargetType(""), ShouldBeEmpty)
	})
}
