package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes for the API server
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Contributors
	v1.HandleFunc("/contributors", s.handleRegisterContributor).Methods(http.MethodPost)
	v1.HandleFunc("/contributors", s.handleContributors).Methods(http.MethodGet)
	v1.HandleFunc("/contributors/{address}", s.handleContributor).Methods(http.MethodGet)

	// Reports and consensus
	v1.HandleFunc("/reports", s.handleSubmitReport).Methods(http.MethodPost)
	v1.HandleFunc("/reports/{txid}", s.handleReports).Methods(http.MethodGet)
	v1.HandleFunc("/consensus/{txid}", s.handleConsensus).Methods(http.MethodGet)
	v1.HandleFunc("/history/{txid}", s.handleHistory).Methods(http.MethodGet)

	// Fees and rewards
	v1.HandleFunc("/monitoring", s.handleAddTxidForMonitoring).Methods(http.MethodPost)
	v1.HandleFunc("/payments", s.handleProcessPayment).Methods(http.MethodPost)
	v1.HandleFunc("/payments/{txid}", s.handlePendingPayment).Methods(http.MethodGet)
	v1.HandleFunc("/fees/registration", s.handleRegistrationFee).Methods(http.MethodPost)
	v1.HandleFunc("/rewards", s.handleRequestReward).Methods(http.MethodPost)
	v1.HandleFunc("/balances", s.handleBalances).Methods(http.MethodGet)
	v1.HandleFunc("/params", s.handleParams).Methods(http.MethodGet)

	// Admin
	admin := v1.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/bridge", s.handleSetBridgeContract).Methods(http.MethodPost)
	admin.HandleFunc("/withdraw", s.handleWithdrawFunds).Methods(http.MethodPost)
	admin.HandleFunc("/params", s.handleUpdateParams).Methods(http.MethodPost)

	r.NotFoundHandler = methodNotAllowed(r)

	return r
}

// methodNotAllowed answers 405 when the path is routed under another method
// and 404 otherwise. mux drops a method mismatch once a later route fails on
// its path, so the check re-matches the request with each routed method.
func methodNotAllowed(r *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			if method == req.Method {
				continue
			}
			alt := &http.Request{Method: method, URL: &url.URL{Path: req.URL.Path}, Header: http.Header{}}
			var match mux.RouteMatch
			if r.Match(alt, &match) && match.MatchErr == nil {
				http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
				return
			}
		}
		http.NotFound(w, req)
	})
}
