package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	nodeerrors "github.com/pastelnetwork/pastel-oracle-node/node/errors"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleRegisterContributor handles POST /api/v1/contributors
func (s *Server) handleRegisterContributor(w http.ResponseWriter, r *http.Request) {
	var req registerContributorRequest
	if !s.decode(w, r, &req) {
		return
	}

	c, err := s.node.RegisterContributor(r.Context(), req.Contributor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusCreated, c)
}

// handleContributors handles GET /api/v1/contributors?eligible=true
func (s *Server) handleContributors(w http.ResponseWriter, r *http.Request) {
	eligibleOnly := r.URL.Query().Get("eligible") == "true"

	contributors, err := s.node.Contributors(r.Context(), eligibleOnly)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, contributors)
}

// handleContributor handles GET /api/v1/contributors/{address}
func (s *Server) handleContributor(w http.ResponseWriter, r *http.Request) {
	c, err := s.node.Contributor(r.Context(), mux.Vars(r)["address"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, c)
}

// handleSubmitReport handles POST /api/v1/reports
func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgSubmitReport
	if !s.decode(w, r, &msg) {
		return
	}

	result, err := s.node.SubmitReport(r.Context(), msg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusCreated, result)
}

// handleReports handles GET /api/v1/reports/{txid}
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.node.Reports(r.Context(), mux.Vars(r)["txid"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, reports)
}

// handleConsensus handles GET /api/v1/consensus/{txid}
func (s *Server) handleConsensus(w http.ResponseWriter, r *http.Request) {
	state, err := s.node.Consensus(r.Context(), mux.Vars(r)["txid"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, state)
}

// handleHistory handles GET /api/v1/history/{txid}
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.node.ConsensusHistory(r.Context(), mux.Vars(r)["txid"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, records)
}

// handleAddTxidForMonitoring handles POST /api/v1/monitoring
func (s *Server) handleAddTxidForMonitoring(w http.ResponseWriter, r *http.Request) {
	var req monitoringRequest
	if !s.decode(w, r, &req) {
		return
	}

	payment, err := s.node.AddTxidForMonitoring(r.Context(), req.Caller, req.Txid)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusCreated, payment)
}

// handleProcessPayment handles POST /api/v1/payments
func (s *Server) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !s.decode(w, r, &req) {
		return
	}

	payment, err := s.node.ProcessPayment(r.Context(), req.Txid, req.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, payment)
}

// handlePendingPayment handles GET /api/v1/payments/{txid}
func (s *Server) handlePendingPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := s.node.PendingPayment(r.Context(), mux.Vars(r)["txid"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, payment)
}

// handleRegistrationFee handles POST /api/v1/fees/registration
func (s *Server) handleRegistrationFee(w http.ResponseWriter, r *http.Request) {
	var req registrationFeeRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.node.RecordRegistrationFee(r.Context(), req.Address, req.Amount, req.Reference); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatus(w, http.StatusCreated, req)
}

// handleRequestReward handles POST /api/v1/rewards
func (s *Server) handleRequestReward(w http.ResponseWriter, r *http.Request) {
	var req rewardRequest
	if !s.decode(w, r, &req) {
		return
	}

	amount, err := s.node.RequestReward(r.Context(), req.Contributor)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, rewardResponse{Contributor: req.Contributor, Amount: amount})
}

// handleBalances handles GET /api/v1/balances
func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.node.Balances(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, balances)
}

// handleParams handles GET /api/v1/params
func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	params, err := s.node.Params(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, params)
}

// handleSetBridgeContract handles POST /api/v1/admin/bridge
func (s *Server) handleSetBridgeContract(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgSetBridgeContract
	if !s.decode(w, r, &msg) {
		return
	}

	if err := s.node.SetBridgeContract(r.Context(), msg.Admin, msg.BridgeContract); err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, msg)
}

// handleWithdrawFunds handles POST /api/v1/admin/withdraw
func (s *Server) handleWithdrawFunds(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgWithdrawFunds
	if !s.decode(w, r, &msg) {
		return
	}

	balances, err := s.node.WithdrawFunds(r.Context(), msg.Admin, msg.RewardPoolAmount, msg.FeeReceivingAmount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, balances)
}

// handleUpdateParams handles POST /api/v1/admin/params
func (s *Server) handleUpdateParams(w http.ResponseWriter, r *http.Request) {
	var msg types.MsgUpdateParams
	if !s.decode(w, r, &msg) {
		return
	}

	if err := s.node.UpdateParams(r.Context(), msg.Admin, msg.Params); err != nil {
		s.writeError(w, err)
		return
	}
	s.write(w, msg.Params)
}

// decode reads a JSON body into v, answering 400 when it is malformed.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, nodeerrors.NewValidationError("malformed request body: "+err.Error()))
		return false
	}
	return true
}

func (s *Server) write(w http.ResponseWriter, data interface{}) {
	s.writeStatus(w, http.StatusOK, data)
}

func (s *Server) writeStatus(w http.ResponseWriter, status int, data interface{}) {
	response := QueryResponse{
		Data:        data,
		LastFetched: time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	oerr := nodeerrors.Classify(err)
	status := oerr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("category", string(oerr.Category)).Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:    err.Error(),
		Code:     oerr.Code,
		Category: string(oerr.Category),
	})
}
