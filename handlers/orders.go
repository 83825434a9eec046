package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// HandleCreateOrder builds a create-order payload from the incoming request
// and submits it to the processor
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingOrderRequest models.IncomingOrderRequest
	err := json.NewDecoder(req.Body).Decode(&incomingOrderRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Intent is validated here because a missing intent is rejected before
	// any mapping runs; the rest of the payload is validated in the mappers.
	if err = validateOrderCreate(incomingOrderRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create order: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := payPalService.CreateOrder(req.Context(), incomingOrderRequest.Intent, &incomingOrderRequest.OrderOptions)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request for new order", log.Data{"success": outcome.Success})
	writeOutcome(w, req, outcome)
}

func validateOrderCreate(incomingOrderRequest models.IncomingOrderRequest) error {
	validate := validator.New()
	return validate.Struct(incomingOrderRequest)
}

// HandleGetOrderDetails reads an order resource from the processor
func HandleGetOrderDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetOrderDetails(req.Context(), vars["order_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}

// HandleUpdateOrder applies an ordered list of edits to an existing order
func HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var incomingUpdateRequest models.IncomingUpdateRequest
	err := json.NewDecoder(req.Body).Decode(&incomingUpdateRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := payPalService.UpdateOrder(req.Context(), vars["order_id"], incomingUpdateRequest.Patches, nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful PATCH request for order", log.Data{"order_id": vars["order_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleAuthorizeOrder places an authorization hold against an approved order
func HandleAuthorizeOrder(w http.ResponseWriter, req *http.Request) {
	approveOrder(w, req, func(req *http.Request, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
		return payPalService.AuthorizeOrder(req.Context(), orderID, opts)
	})
}

// HandleCaptureOrder captures the funds for an approved order
func HandleCaptureOrder(w http.ResponseWriter, req *http.Request) {
	approveOrder(w, req, func(req *http.Request, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
		return payPalService.CaptureOrder(req.Context(), orderID, opts)
	})
}

// HandleApproveOrder dispatches on the operator carried in the request body,
// either an authorization or an immediate capture
func HandleApproveOrder(w http.ResponseWriter, req *http.Request) {
	approveOrder(w, req, func(req *http.Request, orderID string, opts *models.ApproveOrderOptions) (*models.PaymentOutcome, error) {
		return payPalService.HandleApprove(req.Context(), orderID, opts)
	})
}

func approveOrder(w http.ResponseWriter, req *http.Request, operation func(*http.Request, string, *models.ApproveOrderOptions) (*models.PaymentOutcome, error)) {
	vars := mux.Vars(req)

	// an empty body means approval with processor defaults
	var opts *models.ApproveOrderOptions
	if req.Body != nil && req.ContentLength != 0 {
		opts = &models.ApproveOrderOptions{}
		if err := json.NewDecoder(req.Body).Decode(opts); err != nil {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	outcome, err := operation(req, vars["order_id"], opts)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request for order approval", log.Data{"order_id": vars["order_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}
