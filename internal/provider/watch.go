package provider

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ChangeHandlers receives provider-side state changes observed by Watch.
// Nil handlers are skipped.
type ChangeHandlers struct {
	OnAccountsChanged func(accounts []string)
	OnChainChanged    func(chainID string)
}

// Watch polls the wallet for account and chain changes until the returned
// stop function is called or ctx is done. Poll failures are skipped; the
// next round re-observes. Stop blocks until the loop has exited so no
// handler fires after it returns.
func (p *Provider) Watch(ctx context.Context, interval time.Duration, h ChangeHandlers) (stop func()) {
	wctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go p.watchLoop(wctx, interval, h, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (p *Provider) watchLoop(ctx context.Context, interval time.Duration, h ChangeHandlers, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	var (
		lastAccounts string
		lastChain    string
		haveAccounts bool
		haveChain    bool
	)

	for {
		select {
		case <-ctx.Done():
			zap.S().Debugw("provider watch loop exiting", "endpoint", p.endpoint)
			return
		case <-timer.C:
		}

		if accounts, err := p.Accounts(ctx); err == nil {
			key := strings.Join(accounts, ",")
			if haveAccounts && key != lastAccounts && h.OnAccountsChanged != nil {
				h.OnAccountsChanged(accounts)
			}
			lastAccounts, haveAccounts = key, true
		}

		if chainID, err := p.ChainID(ctx); err == nil {
			if haveChain && chainID != lastChain && h.OnChainChanged != nil {
				h.OnChainChanged(chainID)
			}
			lastChain, haveChain = chainID, true
		}

		timer.Reset(interval)
	}
}
