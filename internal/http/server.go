// Package http is the presentation boundary: a loopback-only JSON API the
// UI talks to. It owns the connection state and nothing else.
package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/callpad-io/callpad/internal/chains"
	"github.com/callpad-io/callpad/internal/history"
	"github.com/callpad-io/callpad/internal/provider"
)

// ConnState is the whole connection state. It is replaced atomically as a
// unit on connect, disconnect and provider-emitted change notifications;
// readers always observe a consistent snapshot.
type ConnState struct {
	Connected bool
	Account   string
	ChainID   string
	Provider  *provider.Provider
}

type Server struct {
	mux      *http.ServeMux
	registry *chains.Registry
	detector *provider.Detector
	history  *history.Store

	conn         atomic.Pointer[ConnState]
	pollInterval time.Duration

	watchMu   sync.Mutex
	stopWatch func()

	ctx context.Context
	log *zap.SugaredLogger
}

func NewServer(ctx context.Context, registry *chains.Registry, detector *provider.Detector,
	hist *history.Store, pollInterval time.Duration, log *zap.SugaredLogger) *Server {

	s := &Server{
		mux:          http.NewServeMux(),
		registry:     registry,
		detector:     detector,
		history:      hist,
		pollInterval: pollInterval,
		ctx:          ctx,
		log:          log,
	}
	s.conn.Store(&ConnState{})

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /v1/status", s.handleStatus)
	s.mux.HandleFunc("POST /v1/connect", s.handleConnect)
	s.mux.HandleFunc("POST /v1/disconnect", s.handleDisconnect)
	s.mux.HandleFunc("GET /v1/chains", s.handleChains)
	s.mux.HandleFunc("POST /v1/chains/switch", s.handleSwitchChain)
	s.mux.HandleFunc("POST /v1/tx", s.handleSubmit)
	s.mux.HandleFunc("GET /v1/tx/history", s.handleHistory)
	s.mux.HandleFunc("GET /v1/delegation", s.handleDelegation)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !isLoopbackRequest(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// State returns the current connection snapshot.
func (s *Server) State() *ConnState {
	return s.conn.Load()
}

// connect runs the full detect+connect flow and installs the new state.
func (s *Server) connect(ctx context.Context) (*ConnState, error) {
	p, err := s.detector.Detect(ctx)
	if err != nil {
		return nil, err
	}
	sess, err := provider.Connect(ctx, p)
	if err != nil {
		return nil, err
	}

	st := &ConnState{
		Connected: true,
		Account:   sess.Account,
		ChainID:   sess.ChainID,
		Provider:  p,
	}
	s.conn.Store(st)
	s.startWatch(p)
	return st, nil
}

// TryAutoConnect attempts to restore a session at startup. It is a
// best-effort convenience; the caller discards the error and the user
// connects manually instead.
func (s *Server) TryAutoConnect(ctx context.Context) error {
	st, err := s.connect(ctx)
	if err != nil {
		s.log.Debugw("auto-connect skipped", "error", err)
		return err
	}
	s.log.Infow("auto-connected to wallet", "account", st.Account, "chainId", st.ChainID)
	return nil
}

func (s *Server) startWatch(p *provider.Provider) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.stopWatch != nil {
		s.stopWatch()
	}
	s.stopWatch = p.Watch(s.ctx, s.pollInterval, provider.ChangeHandlers{
		OnAccountsChanged: func(accounts []string) {
			cur := s.conn.Load()
			if cur == nil {
				return
			}
			next := *cur
			if len(accounts) == 0 {
				next.Connected = false
				next.Account = ""
			} else {
				next.Connected = true
				next.Account = accounts[0]
			}
			s.conn.Store(&next)
			s.log.Infow("wallet accounts changed", "count", len(accounts))
		},
		OnChainChanged: func(chainID string) {
			cur := s.conn.Load()
			if cur == nil {
				return
			}
			next := *cur
			next.ChainID = chainID
			s.conn.Store(&next)
			s.log.Infow("wallet chain changed", "chainId", chainID)
		},
	})
}

// Shutdown stops the change watcher. Provider handles are closed through
// the detector.
func (s *Server) Shutdown() {
	s.watchMu.Lock()
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
	s.watchMu.Unlock()
	s.conn.Store(&ConnState{})
	s.detector.Reset()
}
