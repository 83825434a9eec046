package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/mappers"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/service"
	"github.com/companieshouse/paypal-gateway.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

var payPalService *service.PayPalService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) error {
	client, err := service.GetPayPalClient(cfg)
	if err != nil {
		return err
	}

	payPalService = &service.PayPalService{
		Transport: &service.HTTPTransport{
			APIBase:     service.APIBaseForEnv(cfg.PaypalEnv),
			TokenSource: &service.PayPalTokenSource{Client: client},
		},
		Resolver: &mappers.DefaultCurrencyResolver{Currency: cfg.DefaultCurrency},
	}

	RegisterRoutes(mainRouter, payPalService)
	return nil
}

// RegisterRoutes wires the route mappings against the supplied service. Split
// out from Register so tests can swap in a stub transport.
func RegisterRoutes(mainRouter *mux.Router, svc *service.PayPalService) {
	payPalService = svc

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	ordersRouter := mainRouter.PathPrefix("/gateway/orders").Subrouter()
	ordersRouter.HandleFunc("", HandleCreateOrder).Methods("POST").Name("create-order")
	ordersRouter.HandleFunc("/{order_id}", HandleGetOrderDetails).Methods("GET").Name("get-order")
	ordersRouter.HandleFunc("/{order_id}", HandleUpdateOrder).Methods("PATCH").Name("update-order")
	ordersRouter.HandleFunc("/{order_id}/authorize", HandleAuthorizeOrder).Methods("POST").Name("authorize-order")
	ordersRouter.HandleFunc("/{order_id}/capture", HandleCaptureOrder).Methods("POST").Name("capture-order")
	ordersRouter.HandleFunc("/{order_id}/approve", HandleApproveOrder).Methods("POST").Name("approve-order")

	paymentsRouter := mainRouter.PathPrefix("/gateway/payments").Subrouter()
	paymentsRouter.HandleFunc("/authorizations/{authorization_id}", HandleGetAuthorizationDetails).Methods("GET").Name("get-authorization")
	paymentsRouter.HandleFunc("/authorizations/{authorization_id}/capture", HandleDoCapture).Methods("POST").Name("do-capture")
	paymentsRouter.HandleFunc("/authorizations/{authorization_id}/void", HandleVoidAuthorization).Methods("POST").Name("void-authorization")
	paymentsRouter.HandleFunc("/captures/{capture_id}", HandleGetCaptureDetails).Methods("GET").Name("get-capture")
	paymentsRouter.HandleFunc("/captures/{capture_id}/refund", HandleRefundCapture).Methods("POST").Name("refund-capture")
	paymentsRouter.HandleFunc("/refunds/{refund_id}", HandleGetRefundDetails).Methods("GET").Name("get-refund")

	agreementsRouter := mainRouter.PathPrefix("/gateway/billing-agreements").Subrouter()
	agreementsRouter.HandleFunc("/agreement-tokens", HandleCreateAgreementToken).Methods("POST").Name("create-agreement-token")
	agreementsRouter.HandleFunc("/agreement-tokens/{token_id}", HandleGetAgreementTokenDetails).Methods("GET").Name("get-agreement-token")
	agreementsRouter.HandleFunc("/agreements", HandleCreateAgreement).Methods("POST").Name("create-agreement")
	agreementsRouter.HandleFunc("/agreements/{agreement_id}", HandleGetAgreementDetails).Methods("GET").Name("get-agreement")
	agreementsRouter.HandleFunc("/agreements/{agreement_id}", HandleUpdateAgreement).Methods("PATCH").Name("update-agreement")
	agreementsRouter.HandleFunc("/agreements/{agreement_id}/cancel", HandleCancelAgreement).Methods("POST").Name("cancel-agreement")

	// Set middleware for subrouters
	ordersRouter.Use(log.Handler)
	paymentsRouter.Use(log.Handler)
	agreementsRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// writeOutcome translates a processor outcome into the route response. The
// outcome is returned verbatim as the body; only the status is ours.
func writeOutcome(w http.ResponseWriter, req *http.Request, outcome *models.PaymentOutcome) {
	var status int
	switch service.ResponseTypeForOutcome(outcome) {
	case service.Success:
		status = http.StatusOK
	case service.NotFound:
		status = http.StatusNotFound
	case service.InvalidData:
		status = http.StatusBadRequest
	default:
		status = http.StatusBadGateway
	}
	utils.WriteJSONWithStatus(w, req, outcome, status)
}

// handleServiceError distinguishes caller mistakes, which are rejected with
// the full list of missing parameters, from transport failures.
func handleServiceError(w http.ResponseWriter, req *http.Request, err error) {
	if mappers.IsMissingParameter(err) {
		utils.WriteErrorMessage(w, req, http.StatusBadRequest, err)
		return
	}
	log.ErrorR(req, err)
	w.WriteHeader(http.StatusInternalServerError)
}
