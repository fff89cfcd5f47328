package http

import (
	"math/big"
	"net/http"
	"strings"

	"github.com/callpad-io/callpad/internal/delegation"
	"github.com/callpad-io/callpad/internal/provider"
	"github.com/callpad-io/callpad/internal/units"
	"github.com/callpad-io/callpad/internal/validate"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.conn.Load()

	resp := statusResponse{Symbol: s.registry.CurrencySymbolFor("")}
	if st != nil && st.Connected {
		resp.Connected = true
		resp.Account = st.Account
		resp.ChainID = st.ChainID
		resp.Symbol = s.registry.CurrencySymbolFor(st.ChainID)
		resp.Supported = s.registry.IsSupported(st.ChainID)
		if ch, ok := s.registry.Lookup(st.ChainID); ok {
			resp.ChainName = ch.Name
		}
		if st.Provider != nil {
			resp.Endpoint = st.Provider.Endpoint()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	st, err := s.connect(r.Context())
	if err != nil {
		s.log.Warnw("connect failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := connectResponse{
		Connected: true,
		Account:   st.Account,
		ChainID:   st.ChainID,
		Symbol:    s.registry.CurrencySymbolFor(st.ChainID),
	}
	if ch, ok := s.registry.Lookup(st.ChainID); ok {
		resp.ChainName = ch.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	s.Shutdown()
	s.log.Infow("wallet disconnected")
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleChains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chainsResponse{Chains: s.registry.All()})
}

func (s *Server) handleSwitchChain(w http.ResponseWriter, r *http.Request) {
	var req switchChainRequest
	if err := readJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	st := s.conn.Load()
	if st == nil || !st.Connected || st.Provider == nil {
		writeError(w, http.StatusConflict, "not connected")
		return
	}

	if err := provider.SwitchChain(r.Context(), st.Provider, req.ChainID, s.registry); err != nil {
		s.log.Warnw("chain switch failed", "chainId", req.ChainID, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	// Refresh the active chain; the watch loop would catch up anyway.
	if id, err := st.Provider.ChainID(r.Context()); err == nil {
		next := *st
		next.ChainID = id
		s.conn.Store(&next)
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := readJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req.To = strings.TrimSpace(req.To)
	req.Data = strings.TrimSpace(req.Data)
	if req.Data == "" {
		req.Data = "0x"
	}

	// All field validation happens here, before the wallet sees anything.
	fieldErrs := map[string]string{}
	if !validate.IsValidAddress(req.To) {
		fieldErrs["to"] = "must be 0x followed by exactly 40 hex characters"
	}
	if !validate.IsValidCalldata(req.Data) {
		fieldErrs["data"] = "must be 0x followed by hex characters"
	}

	var value *big.Int
	if strings.TrimSpace(req.Value) != "" {
		base, err := units.ToBaseUnits(req.Value)
		if err != nil {
			fieldErrs["value"] = err.Error()
		} else {
			value, _ = new(big.Int).SetString(base, 10)
		}
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, fieldErrorResponse{FieldErrors: fieldErrs})
		return
	}

	st := s.conn.Load()
	if st == nil || !st.Connected || st.Provider == nil {
		writeError(w, http.StatusConflict, "not connected")
		return
	}

	txReq := provider.TxRequest{To: req.To, Data: req.Data, Value: value}
	res := provider.SubmitTransaction(r.Context(), st.Provider, txReq)
	entry := s.history.Record(txReq, res)

	if res.Success {
		s.log.Infow("transaction submitted", "hash", res.Hash, "to", req.To)
	} else {
		s.log.Warnw("transaction rejected", "to", req.To, "error", res.Error)
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": s.history.List()})
}

func (s *Server) handleDelegation(w http.ResponseWriter, r *http.Request) {
	addr := strings.TrimSpace(r.URL.Query().Get("address"))
	if !validate.IsValidAddress(addr) {
		writeError(w, http.StatusBadRequest, "address must be 0x followed by exactly 40 hex characters")
		return
	}

	st := s.conn.Load()
	if st == nil || st.Provider == nil {
		writeError(w, http.StatusConflict, "not connected")
		return
	}

	resp := delegationResponse{
		Address: addr,
		HasCode: delegation.HasDeployedCode(r.Context(), st.Provider, addr),
	}
	if to, ok := delegation.DelegateOf(r.Context(), st.Provider, addr); ok {
		resp.Delegated = true
		resp.DelegateTo = to.Hex()
	}
	writeJSON(w, http.StatusOK, resp)
}
