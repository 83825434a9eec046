package service

import "github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"

// ResponseType enumerates the outcomes a handler distinguishes between
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

// ResponseTypeForOutcome collapses a normalized processor outcome onto the
// response types the HTTP layer maps to status codes.
func ResponseTypeForOutcome(outcome *models.PaymentOutcome) ResponseType {
	if outcome == nil {
		return Error
	}
	if outcome.Success {
		return Success
	}
	switch outcome.ErrorName {
	case "RESOURCE_NOT_FOUND":
		return NotFound
	case "INVALID_REQUEST", "UNPROCESSABLE_ENTITY", "BUSINESS_ERROR":
		return InvalidData
	default:
		return Error
	}
}
