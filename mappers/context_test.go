package mappers

import (
	"testing"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapApplicationContext(t *testing.T) {
	Convey("Enumerated sub-fields pass through their allow-lists", t, func() {
		appContext, err := MapApplicationContext(&models.ApplicationContextOptions{
			ReturnURL:          "https://example.com/return",
			LandingPage:        "BILLING",
			UserAction:         "pay_now",
			ShippingPreference: "NO_SHIPPING",
		})

		So(err, ShouldBeNil)
		So(appContext.LandingPage, ShouldEqual, "BILLING")
		So(appContext.UserAction, ShouldBeEmpty)
		So(appContext.ShippingPreference, ShouldEqual, "NO_SHIPPING")
	})

	Convey("A context that maps to nothing is elided", t, func() {
		appContext, err := MapApplicationContext(&models.ApplicationContextOptions{
			LandingPage: "HOMEPAGE",
		})

		So(err, ShouldBeNil)
		So(appContext, ShouldBeNil)
	})
}

func TestUnitMapPaymentMethod(t *testing.T) {
	Convey("An empty payment method is elided", t, func() {
		So(MapPaymentMethod(&models.PaymentMethodOptions{PayeePreferred: "WHENEVER"}), ShouldBeNil)
	})

	Convey("Allowed values are kept", t, func() {
		method := MapPaymentMethod(&models.PaymentMethodOptions{
			PayeePreferred:         "IMMEDIATE_PAYMENT_REQUIRED",
			StandardEntryClassCode: "WEB",
		})

		So(method, ShouldNotBeNil)
		So(method.PayeePreferred, ShouldEqual, "IMMEDIATE_PAYMENT_REQUIRED")
		So(method.StandardEntryClassCode, ShouldEqual, "WEB")
	})
}

func TestUnitMapStoredPaymentSource(t *testing.T) {
	Convey("Payment initiator and payment type are mandatory", t, func() {
		_, err := MapStoredPaymentSource(&models.StoredPaymentSourceOptions{Usage: "FIRST"})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): payment_initiator, payment_type")
	})

	Convey("The network reference mandates an id and a network", t, func() {
		_, err := MapStoredPaymentSource(&models.StoredPaymentSourceOptions{
			PaymentInitiator:                    "MERCHANT",
			PaymentType:                         "RECURRING",
			PreviousNetworkTransactionReference: &models.NetworkTransactionReferenceOptions{Date: "2026-01-01"},
		})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): id, network")
	})

	Convey("A valid stored source keeps the filtered values", t, func() {
		source, err := MapStoredPaymentSource(&models.StoredPaymentSourceOptions{
			PaymentInitiator: "MERCHANT",
			PaymentType:      "RECURRING",
			Usage:            "SUBSEQUENT",
		})

		So(err, ShouldBeNil)
		So(source.PaymentInitiator, ShouldEqual, "MERCHANT")
		So(source.PaymentType, ShouldEqual, "RECURRING")
		So(source.Usage, ShouldEqual, "SUBSEQUENT")
	})
}
