// Package mappers builds and validates the outgoing request payloads for the
// payment processor's REST API. Every function here is a pure transformation
// of caller options into wire structs; nothing in this package performs I/O.
package mappers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// MissingParameterError reports every required key that was absent or empty
// in the supplied options. It is always raised before any transport call and
// is fatal to the current operation.
type MissingParameterError struct {
	Params []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter(s): %s", strings.Join(e.Params, ", "))
}

// IsMissingParameter reports whether err is a MissingParameterError at any
// depth of wrapping.
func IsMissingParameter(err error) bool {
	var target *MissingParameterError
	return errors.As(err, &target)
}

// Required pairs a wire-level key name with the candidate value the caller
// supplied for it.
type Required struct {
	Key   string
	Value interface{}
}

// Requires checks each field in order and returns a MissingParameterError
// naming every key whose value is absent, rather than stopping at the first
// missing one.
func Requires(fields ...Required) error {
	var missing []string
	for _, f := range fields {
		if !supplied(f.Value) {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return &MissingParameterError{Params: missing}
	}
	return nil
}

// supplied treats nil, empty strings, nil pointers and empty collections as
// absent. Any other value counts as supplied, including false booleans.
func supplied(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// appendMissing merges two validation results so a single call can report
// keys found missing at different mapping depths. When either error is not a
// MissingParameterError the first error encountered wins.
func appendMissing(err, more error) error {
	if more == nil {
		return err
	}
	if err == nil {
		return more
	}
	var a, b *MissingParameterError
	if errors.As(err, &a) && errors.As(more, &b) {
		merged := append(append([]string{}, a.Params...), b.Params...)
		return &MissingParameterError{Params: merged}
	}
	return err
}
