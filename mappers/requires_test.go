package mappers

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRequires(t *testing.T) {
	Convey("No error when every field is supplied", t, func() {
		err := Requires(
			Required{"intent", "CAPTURE"},
			Required{"purchase_units", []string{"unit"}},
		)
		So(err, ShouldBeNil)
	})

	Convey("Every missing key is reported, not just the first", t, func() {
		err := Requires(
			Required{"intent", ""},
			Required{"currency_code", "USD"},
			Required{"value", nil},
		)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "missing required parameter(s): intent, value")

		var missing *MissingParameterError
		So(errors.As(err, &missing), ShouldBeTrue)
		So(missing.Params, ShouldResemble, []string{"intent", "value"})
	})

	Convey("Empty collections count as absent", t, func() {
		err := Requires(
			Required{"purchase_units", []string{}},
			Required{"breakdown", map[string]string{}},
		)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "purchase_units, breakdown")
	})

	Convey("Typed nil pointers count as absent", t, func() {
		var amount *struct{ Value string }
		err := Requires(Required{"amount", amount})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "amount")
	})

	Convey("A false boolean counts as supplied", t, func() {
		skip := false
		err := Requires(Required{"skip_shipping_address", &skip})
		So(err, ShouldBeNil)
	})
}

func TestUnitIsMissingParameter(t *testing.T) {
	Convey("Matches a MissingParameterError at any depth of wrapping", t, func() {
		err := Requires(Required{"intent", ""})
		So(IsMissingParameter(err), ShouldBeTrue)
		So(IsMissingParameter(fmt.Errorf("mapping order: [%w]", err)), ShouldBeTrue)
	})

	Convey("Does not match other errors", t, func() {
		So(IsMissingParameter(errors.New("boom")), ShouldBeFalse)
		So(IsMissingParameter(nil), ShouldBeFalse)
	})
}

func TestUnitAppendMissing(t *testing.T) {
	Convey("Merges the parameter lists of two missing-parameter errors", t, func() {
		first := Requires(Required{"intent", ""})
		second := Requires(Required{"amount", nil})

		merged := appendMissing(first, second)

		var missing *MissingParameterError
		So(errors.As(merged, &missing), ShouldBeTrue)
		So(missing.Params, ShouldResemble, []string{"intent", "amount"})
	})

	Convey("Passes through when one side is nil", t, func() {
		err := Requires(Required{"intent", ""})
		So(appendMissing(nil, err), ShouldEqual, err)
		So(appendMissing(err, nil), ShouldEqual, err)
	})

	Convey("The first error wins when either side is not a missing-parameter error", t, func() {
		boom := errors.New("boom")
		missing := Requires(Required{"intent", ""})
		So(appendMissing(boom, missing), ShouldEqual, boom)
	})
}
