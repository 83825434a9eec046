package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
)

// ClassifyResponse normalizes a raw processor response into a
// PaymentOutcome. Failure bodies always carry a name (INVALID_REQUEST,
// UNPROCESSABLE_ENTITY, RESOURCE_NOT_FOUND or the agreement-specific
// BUSINESS_ERROR); success bodies never do. A remote failure is data, not an
// error: the error return covers unparseable bodies only.
func ClassifyResponse(statusCode int, body []byte) (*models.PaymentOutcome, error) {
	outcome := &models.PaymentOutcome{StatusCode: statusCode}

	fields := map[string]interface{}{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("error parsing response body: [%w]", err)
		}
	}
	outcome.Body = fields

	name, _ := fields["name"].(string)
	if name == "" && statusCode < http.StatusBadRequest {
		outcome.Success = true
		outcome.Message = successMessage(fields)
		return outcome, nil
	}

	outcome.ErrorName = name
	if outcome.ErrorName == "" {
		outcome.ErrorName = errorNameForStatus(statusCode)
	}

	if message, ok := fields["message"].(string); ok && message != "" {
		outcome.Message = message
	} else {
		outcome.Message = http.StatusText(statusCode)
	}

	return outcome, nil
}

func successMessage(fields map[string]interface{}) string {
	if status, ok := fields["status"].(string); ok && status != "" {
		return status
	}
	return "success"
}

// errorNameForStatus covers the degenerate case of a failure status with no
// named body, keeping the taxonomy stable for callers.
func errorNameForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "RESOURCE_NOT_FOUND"
	case http.StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	default:
		if statusCode >= http.StatusInternalServerError {
			return "INTERNAL_SERVER_ERROR"
		}
		return "INVALID_REQUEST"
	}
}
