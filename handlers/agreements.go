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

// HandleCreateAgreementToken requests a new billing agreement token
func HandleCreateAgreementToken(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var opts models.BillingAgreementOptions
	err := json.NewDecoder(req.Body).Decode(&opts)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := payPalService.CreateBillingAgreementToken(req.Context(), &opts)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request for new agreement token", log.Data{"success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleCreateAgreement exchanges an approved token for a billing agreement
func HandleCreateAgreement(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingAgreementRequest models.IncomingAgreementRequest
	err := json.NewDecoder(req.Body).Decode(&incomingAgreementRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingAgreementRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create agreement: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := payPalService.CreateAgreementForApproval(req.Context(), incomingAgreementRequest.TokenID, nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request for new billing agreement", log.Data{"success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleUpdateAgreement applies an ordered list of edits to an agreement
func HandleUpdateAgreement(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var edits []models.AgreementPatchOptions
	err := json.NewDecoder(req.Body).Decode(&edits)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := payPalService.UpdateBillingAgreement(req.Context(), vars["agreement_id"], edits, nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful PATCH request for billing agreement", log.Data{"agreement_id": vars["agreement_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleCancelAgreement cancels a billing agreement
func HandleCancelAgreement(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var opts *models.CancelAgreementOptions
	if req.Body != nil && req.ContentLength != 0 {
		opts = &models.CancelAgreementOptions{}
		if err := json.NewDecoder(req.Body).Decode(opts); err != nil {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	outcome, err := payPalService.CancelBillingAgreement(req.Context(), vars["agreement_id"], opts)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	log.InfoR(req, "Successful POST request to cancel billing agreement", log.Data{"agreement_id": vars["agreement_id"], "success": outcome.Success})
	writeOutcome(w, req, outcome)
}

// HandleGetAgreementTokenDetails reads an agreement token resource
func HandleGetAgreementTokenDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetBillingAgreementTokenDetails(req.Context(), vars["token_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}

// HandleGetAgreementDetails reads an agreement resource
func HandleGetAgreementDetails(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	outcome, err := payPalService.GetBillingAgreementDetails(req.Context(), vars["agreement_id"], nil)
	if err != nil {
		handleServiceError(w, req, err)
		return
	}

	writeOutcome(w, req, outcome)
}
