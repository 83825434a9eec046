package service

import (
	"net/http"
	"testing"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitClassifyResponse(t *testing.T) {
	Convey("A created order classifies as success with its status as message", t, func() {
		outcome, err := ClassifyResponse(http.StatusCreated, []byte(fixtures.GetCreatedOrderResponse()))

		So(err, ShouldBeNil)
		So(outcome.Success, ShouldBeTrue)
		So(outcome.StatusCode, ShouldEqual, http.StatusCreated)
		So(outcome.Message, ShouldEqual, "CREATED")
		So(outcome.ErrorName, ShouldBeEmpty)
		So(outcome.Body["id"], ShouldEqual, "5O190127TN364715T")
	})

	Convey("A success body with no status falls back to a generic message", t, func() {
		outcome, err := ClassifyResponse(http.StatusOK, []byte(`{"id":"123"}`))

		So(err, ShouldBeNil)
		So(outcome.Success, ShouldBeTrue)
		So(outcome.Message, ShouldEqual, "success")
	})

	Convey("An empty body on a 2xx status classifies as success", t, func() {
		outcome, err := ClassifyResponse(http.StatusNoContent, nil)

		So(err, ShouldBeNil)
		So(outcome.Success, ShouldBeTrue)
		So(outcome.Body, ShouldBeEmpty)
	})

	Convey("A named error body classifies as failure with its name and message", t, func() {
		outcome, err := ClassifyResponse(http.StatusUnprocessableEntity, []byte(fixtures.GetUnprocessableEntityResponse()))

		So(err, ShouldBeNil)
		So(outcome.Success, ShouldBeFalse)
		So(outcome.ErrorName, ShouldEqual, "UNPROCESSABLE_ENTITY")
		So(outcome.Message, ShouldContainSubstring, "failed business validation")
	})

	Convey("A named error on a 2xx status still classifies as failure", t, func() {
		outcome, err := ClassifyResponse(http.StatusOK, []byte(`{"name":"BUSINESS_ERROR","message":"Agreement cancelled"}`))

		So(err, ShouldBeNil)
		So(outcome.Success, ShouldBeFalse)
		So(outcome.ErrorName, ShouldEqual, "BUSINESS_ERROR")
		So(outcome.Message, ShouldEqual, "Agreement cancelled")
	})

	Convey("A failure status with no name falls back on the status taxonomy", t, func() {
		outcome, _ := ClassifyResponse(http.StatusNotFound, []byte(`{}`))
		So(outcome.ErrorName, ShouldEqual, "RESOURCE_NOT_FOUND")
		So(outcome.Message, ShouldEqual, "Not Found")

		outcome, _ = ClassifyResponse(http.StatusUnprocessableEntity, nil)
		So(outcome.ErrorName, ShouldEqual, "UNPROCESSABLE_ENTITY")

		outcome, _ = ClassifyResponse(http.StatusBadRequest, nil)
		So(outcome.ErrorName, ShouldEqual, "INVALID_REQUEST")

		outcome, _ = ClassifyResponse(http.StatusServiceUnavailable, nil)
		So(outcome.ErrorName, ShouldEqual, "INTERNAL_SERVER_ERROR")
	})

	Convey("An unparseable body is an error, not an outcome", t, func() {
		outcome, err := ClassifyResponse(http.StatusOK, []byte("<html>gateway timeout</html>"))

		So(outcome, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "error parsing response body")
	})
}

func TestUnitResponseTypeForOutcome(t *testing.T) {
	Convey("Outcomes collapse onto the handler response types", t, func() {
		So(ResponseTypeForOutcome(&models.PaymentOutcome{Success: true}), ShouldEqual, Success)
		So(ResponseTypeForOutcome(&models.PaymentOutcome{ErrorName: "RESOURCE_NOT_FOUND"}), ShouldEqual, NotFound)
		So(ResponseTypeForOutcome(&models.PaymentOutcome{ErrorName: "INVALID_REQUEST"}), ShouldEqual, InvalidData)
		So(ResponseTypeForOutcome(&models.PaymentOutcome{ErrorName: "UNPROCESSABLE_ENTITY"}), ShouldEqual, InvalidData)
		So(ResponseTypeForOutcome(&models.PaymentOutcome{ErrorName: "BUSINESS_ERROR"}), ShouldEqual, InvalidData)
		So(ResponseTypeForOutcome(&models.PaymentOutcome{ErrorName: "INTERNAL_SERVER_ERROR"}), ShouldEqual, Error)
		So(ResponseTypeForOutcome(nil), ShouldEqual, Error)
	})

	Convey("Response types render their names", t, func() {
		So(Success.String(), ShouldEqual, "success")
		So(NotFound.String(), ShouldEqual, "not-found")
		So(InvalidData.String(), ShouldEqual, "invalid-data")
		So(Error.String(), ShouldEqual, "error")
	})
}
