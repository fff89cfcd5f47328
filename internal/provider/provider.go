// Package provider adapts an external wallet's JSON-RPC endpoint (a
// Frame-style EIP-1193 surface on localhost) for account queries,
// transaction submission and chain switching. callpad never signs
// anything itself; every sensitive operation is delegated to the wallet.
package provider

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/callpad-io/callpad/internal/chains"
)

var (
	// ErrNoProvider means no wallet endpoint answered the detection probe.
	ErrNoProvider = errors.New("provider: no wallet endpoint detected")
	// ErrNoAccounts means authorization succeeded but yielded zero accounts.
	ErrNoAccounts = errors.New("provider: wallet returned no accounts")
)

// Provider is a live handle to one wallet endpoint.
type Provider struct {
	client   *rpc.Client
	endpoint string
}

// Dial connects to a wallet endpoint. For HTTP endpoints the dial itself
// is lazy; the first Call is what proves the wallet is there.
func Dial(ctx context.Context, endpoint string) (*Provider, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("provider: empty wallet endpoint")
	}
	client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "dial wallet endpoint %s", endpoint)
	}
	return &Provider{client: client, endpoint: endpoint}, nil
}

func (p *Provider) Endpoint() string { return p.endpoint }

func (p *Provider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

// Call forwards a raw request to the wallet.
func (p *Provider) Call(ctx context.Context, result any, method string, args ...any) error {
	return p.client.CallContext(ctx, result, method, args...)
}

// ChainID returns the wallet's active chain identifier, normalized to its
// decimal string form.
func (p *Provider) ChainID(ctx context.Context) (string, error) {
	var hex string
	if err := p.Call(ctx, &hex, "eth_chainId"); err != nil {
		return "", err
	}
	return chains.NormalizeChainID(hex), nil
}

// Accounts lists the accounts the wallet has already authorized for us.
func (p *Provider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.Call(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// RequestAccounts asks the wallet to authorize interactively. The wallet
// may prompt its user; the call blocks until they decide.
func (p *Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.Call(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CodeAt returns the hex bytecode deployed at address on the latest block.
func (p *Provider) CodeAt(ctx context.Context, address string) (string, error) {
	var code string
	if err := p.Call(ctx, &code, "eth_getCode", address, "latest"); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(code)), nil
}

// Session is the outcome of a successful Connect.
type Session struct {
	Provider *Provider
	Account  string
	ChainID  string
}

// Connect queries already-authorized accounts first and falls back to an
// interactive authorization request when there are none.
func Connect(ctx context.Context, p *Provider) (Session, error) {
	if p == nil {
		return Session{}, ErrNoProvider
	}

	accounts, err := p.Accounts(ctx)
	if err != nil {
		return Session{}, errors.Wrap(err, "query authorized accounts")
	}
	if len(accounts) == 0 {
		accounts, err = p.RequestAccounts(ctx)
		if err != nil {
			return Session{}, errors.Wrap(err, "request account authorization")
		}
	}
	if len(accounts) == 0 {
		return Session{}, ErrNoAccounts
	}

	chainID, err := p.ChainID(ctx)
	if err != nil {
		return Session{}, errors.Wrap(err, "query active chain id")
	}

	return Session{Provider: p, Account: accounts[0], ChainID: chainID}, nil
}
