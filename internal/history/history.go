// Package history keeps the session's submission attempts in memory.
// Nothing here survives a restart.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/callpad-io/callpad/internal/provider"
)

// Entry is one recorded submission attempt.
type Entry struct {
	ID          string    `json:"id"`
	To          string    `json:"to"`
	Data        string    `json:"data"`
	Value       string    `json:"value,omitempty"`
	Hash        string    `json:"hash"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Store is an in-memory, append-only submission log.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Record appends the outcome of one submission and returns the stored
// entry with its assigned id and timestamp.
func (s *Store) Record(req provider.TxRequest, res provider.TxResult) Entry {
	e := Entry{
		ID:          uuid.NewString(),
		To:          req.To,
		Data:        req.Data,
		Hash:        res.Hash,
		Success:     res.Success,
		Error:       res.Error,
		SubmittedAt: time.Now().UTC(),
	}
	if req.Value != nil {
		e.Value = req.Value.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e
}

// List returns all entries, newest first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// Len reports the number of recorded attempts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
