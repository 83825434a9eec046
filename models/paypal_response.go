package models

// ErrorDetail is one entry in the details array of a processor error body.
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Value       string `json:"value,omitempty"`
	Location    string `json:"location,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the documented processor failure body. Success bodies
// never carry a name; failure bodies always do.
type ErrorResponse struct {
	Name    string        `json:"name"`
	Message string        `json:"message"`
	DebugID string        `json:"debug_id,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// PaymentOutcome is the normalized result returned to the caller for every
// round trip, success or failure. Remote failures are carried here as
// values, never as Go errors, so callers inspect Success and Message
// uniformly.
type PaymentOutcome struct {
	Success    bool                   `json:"success"`
	StatusCode int                    `json:"status_code"`
	ErrorName  string                 `json:"error_name,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Body       map[string]interface{} `json:"body,omitempty"`
}
