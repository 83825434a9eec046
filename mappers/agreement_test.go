package mappers

import (
	"testing"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapAgreementToken(t *testing.T) {
	Convey("Payer and plan are mandatory", t, func() {
		_, err := MapAgreementToken(&models.BillingAgreementOptions{Description: "agreement"})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): payer, plan")
	})

	Convey("Nil options report the same missing keys", t, func() {
		_, err := MapAgreementToken(nil)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): payer, plan")
	})

	Convey("A minimal valid agreement maps payer, plan and preferences", t, func() {
		request, err := MapAgreementToken(fixtures.GetBillingAgreementOptions())

		So(err, ShouldBeNil)
		So(request.Description, ShouldEqual, "Billing agreement for repeat purchases")
		So(request.Payer.PaymentMethod, ShouldEqual, "PAYPAL")
		So(request.Plan.Type, ShouldEqual, "MERCHANT_INITIATED_BILLING")
		So(request.Plan.MerchantPreferences.ReturnURL, ShouldEqual, "https://example.com/return")
		So(*request.Plan.MerchantPreferences.SkipShippingAddress, ShouldBeTrue)
	})

	Convey("Merchant preferences mandate both URLs and the shipping flag", t, func() {
		opts := fixtures.GetBillingAgreementOptions()
		opts.Plan.MerchantPreferences = &models.MerchantPreferencesOptions{ReturnURL: "https://example.com/return"}

		_, err := MapAgreementToken(opts)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): cancel_url, skip_shipping_address")
	})

	Convey("A false shipping flag counts as supplied", t, func() {
		opts := fixtures.GetBillingAgreementOptions()
		opts.Plan.MerchantPreferences.SkipShippingAddress = fixtures.BoolPointer(false)

		request, err := MapAgreementToken(opts)

		So(err, ShouldBeNil)
		So(*request.Plan.MerchantPreferences.SkipShippingAddress, ShouldBeFalse)
	})

	Convey("The plan type is mandatory and filtered", t, func() {
		opts := fixtures.GetBillingAgreementOptions()
		opts.Plan.Type = ""

		_, err := MapAgreementToken(opts)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): type")
	})

	Convey("The shipping address uses the v1 field names and mandates five of them", t, func() {
		opts := fixtures.GetBillingAgreementOptions()
		opts.ShippingAddress = &models.AgreementAddressOptions{Line1: "1 High Street"}

		_, err := MapAgreementToken(opts)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): postal_code, country_code, city, state")
	})
}

func TestUnitMapAgreementPatches(t *testing.T) {
	Convey("Op, path and value are mandatory per edit", t, func() {
		_, err := MapAgreementPatches([]models.AgreementPatchOptions{{Op: "replace"}})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): path, value")
	})

	Convey("One output entry per edit, order preserved", t, func() {
		patches, err := MapAgreementPatches([]models.AgreementPatchOptions{
			{Op: "replace", Path: "/", Value: &models.AgreementPatchValueOptions{Description: "first"}},
			{Op: "replace", Path: "/", Value: &models.AgreementPatchValueOptions{NotifyURL: "https://example.com/notify"}},
		})

		So(err, ShouldBeNil)
		So(patches, ShouldHaveLength, 2)
		So(patches[0].Value.Description, ShouldEqual, "first")
		So(patches[1].Value.NotifyURL, ShouldEqual, "https://example.com/notify")
	})
}
