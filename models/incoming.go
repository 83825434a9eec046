package models

// IncomingOrderRequest is the body accepted by the create-order route. The
// intent is validated here because the route rejects a missing intent before
// the mapping layer runs.
type IncomingOrderRequest struct {
	Intent string `json:"intent" validate:"required"`
	OrderOptions
}

// IncomingUpdateRequest is the body accepted by the update-order route. An
// empty edit list is rejected by the service layer.
type IncomingUpdateRequest struct {
	Patches []PatchOperationOptions `json:"patches"`
}

// IncomingAgreementRequest is the body accepted by the create-agreement
// route.
type IncomingAgreementRequest struct {
	TokenID string `json:"token_id" validate:"required"`
}
