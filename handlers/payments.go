package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	"github.com/gorilla/mux"
)

// HandleDoCapture captures the funds held by a previous authorization
func HandleDoCapture(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var opts *models.DoCaptureOptions
	if req.Body != nil && req.ContentLength != 0 {
		opts = &models.DoCaptureOptions{}
		if err := json.NewDecoder(req.Body).Decode(opts); err != nil {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	outcome, err := payPalService.DoCapture(req.Context(), vars["authorization_id"], opts)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request to capture authorization", log.Data{"authorization_id": vars["authorization_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleRefundCapture refunds a previously captured payment
func HandleRefundCapture(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	// an empty body requests a full refund
	var opts *models.RefundOptions
	if req.Body != nil && req.ContentLength != 0 {
		opts = &models.RefundOptions{}
		if err := json.NewDecoder(req.Body).Decode(opts); err != nil {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	outcome, err := payPalService.RefundCapture(req.Context(), vars["capture_id"], opts)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request to refund capture", log.Data{"capture_id": vars["capture_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleVoidAuthorization releases the hold placed by an authorization
func HandleVoidAuthorization(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.VoidAuthorization(req.Context(), vars["authorization_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request to void authorization", log.Data{"authorization_id": vars["authorization_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleGetAuthorizationDetails reads an authorization resource
func HandleGetAuthorizationDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetAuthorizationDetails(req.Context(), vars["authorization_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}

// HandleGetCaptureDetails reads a capture resource
func HandleGetCaptureDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetCaptureDetails(req.Context(), vars["capture_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}

// HandleGetRefundDetails reads a refund resource
func HandleGetRefundDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetRefundDetails(req.Context(), vars["refund_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}
