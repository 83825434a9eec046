package mappers

import (
	"testing"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

var usdResolver = DefaultCurrencyResolver{Currency: "USD"}

func TestUnitDefaultCurrencyResolver(t *testing.T) {
	Convey("A decimal value resolves to the configured currency", t, func() {
		So(usdResolver.Resolve("25.00"), ShouldEqual, "USD")
		So(usdResolver.Resolve("3"), ShouldEqual, "USD")
	})

	Convey("A value that does not parse resolves to nothing", t, func() {
		So(usdResolver.Resolve("twenty"), ShouldBeEmpty)
		So(usdResolver.Resolve(""), ShouldBeEmpty)
	})
}

func TestUnitMapAmount(t *testing.T) {
	Convey("An explicit currency code is kept", t, func() {
		amount, err := MapAmount(&models.AmountOptions{CurrencyCode: "GBP", Value: "10.00"}, usdResolver)

		So(err, ShouldBeNil)
		So(amount.CurrencyCode, ShouldEqual, "GBP")
		So(amount.Value, ShouldEqual, "10.00")
	})

	Convey("A missing currency code is inferred from the value", t, func() {
		amount, err := MapAmount(&models.AmountOptions{Value: "10.00"}, usdResolver)

		So(err, ShouldBeNil)
		So(amount.CurrencyCode, ShouldEqual, "USD")
	})

	Convey("A value the resolver cannot price reports a missing currency code", t, func() {
		_, err := MapAmount(&models.AmountOptions{Value: "ten"}, usdResolver)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): currency_code")
	})

	Convey("Nil options report both keys missing", t, func() {
		_, err := MapAmount(nil, usdResolver)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): currency_code, value")
	})

	Convey("Breakdown entries are mapped through the same rules", t, func() {
		amount, err := MapAmount(fixtures.GetBreakdownAmountOptions(), usdResolver)

		So(err, ShouldBeNil)
		So(amount.Breakdown, ShouldHaveLength, 2)
		So(amount.Breakdown["item_total"].Value, ShouldEqual, "20.00")
		So(amount.Breakdown["shipping"].CurrencyCode, ShouldEqual, "USD")
	})

	Convey("A breakdown entry missing its value fails the whole amount", t, func() {
		opts := &models.AmountOptions{
			CurrencyCode: "USD",
			Value:        "25.00",
			Breakdown: map[string]models.AmountOptions{
				"item_total": {CurrencyCode: "USD"},
			},
		}

		_, err := MapAmount(opts, usdResolver)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): value")
	})

	Convey("Breakdown nesting beyond the depth cap is dropped", t, func() {
		opts := &models.AmountOptions{
			CurrencyCode: "USD", Value: "5.00",
			Breakdown: map[string]models.AmountOptions{
				"item_total": {
					CurrencyCode: "USD", Value: "4.00",
					Breakdown: map[string]models.AmountOptions{
						"item_total": {
							CurrencyCode: "USD", Value: "3.00",
							Breakdown: map[string]models.AmountOptions{
								"item_total": {
									CurrencyCode: "USD", Value: "2.00",
									Breakdown: map[string]models.AmountOptions{
										"item_total": {
											CurrencyCode: "USD", Value: "1.00",
											Breakdown: map[string]models.AmountOptions{
												"item_total": {CurrencyCode: "USD", Value: "0.50"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		}

		amount, err := MapAmount(opts, usdResolver)

		So(err, ShouldBeNil)

		level := amount
		for i := 0; i < 4; i++ {
			So(level.Breakdown, ShouldHaveLength, 1)
			level = level.Breakdown["item_total"]
		}
		So(level.Value, ShouldEqual, "1.00")
		So(level.Breakdown, ShouldBeEmpty)
	})
}
