package provider

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/callpad-io/callpad/internal/chains"
	"github.com/callpad-io/callpad/internal/constants"
)

// TxRequest is one contract call composed by the user. Value is the amount
// in base units, nil when nothing is attached.
type TxRequest struct {
	To    string
	Data  string
	Value *big.Int
}

// TxResult is the sole outcome surface for a submission attempt. Hash is
// empty whenever Success is false.
type TxResult struct {
	Hash    string `json:"hash"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type txPayload struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value,omitempty"`
}

type switchChainParam struct {
	ChainID string `json:"chainId"`
}

type nativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type addChainParam struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    nativeCurrency `json:"nativeCurrency"`
	RpcURLs           []string       `json:"rpcUrls,omitempty"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls,omitempty"`
}

// SubmitTransaction sends req to the wallet for signing and broadcast.
// Rejections of any kind come back inside the TxResult; this never
// returns an error to the caller.
func SubmitTransaction(ctx context.Context, p *Provider, req TxRequest) TxResult {
	if p == nil {
		return TxResult{Error: ErrNoProvider.Error()}
	}

	accounts, err := p.Accounts(ctx)
	if err != nil {
		return TxResult{Error: err.Error()}
	}
	if len(accounts) == 0 {
		return TxResult{Error: ErrNoAccounts.Error()}
	}

	payload := txPayload{From: accounts[0], To: req.To, Data: req.Data}
	if payload.Data == "" {
		payload.Data = "0x"
	}
	if req.Value != nil && req.Value.Sign() > 0 {
		payload.Value = hexutil.EncodeBig(req.Value)
	}

	var hash string
	if err := p.Call(ctx, &hash, "eth_sendTransaction", payload); err != nil {
		return TxResult{Error: err.Error()}
	}
	return TxResult{Hash: hash, Success: true}
}

// SwitchChain asks the wallet to change its active chain. When the wallet
// does not know the chain (EIP-1193 code 4902) it is asked to add it from
// registry metadata, then the switch is retried once. Every other failure
// propagates.
func SwitchChain(ctx context.Context, p *Provider, targetID string, reg *chains.Registry) error {
	if p == nil {
		return ErrNoProvider
	}
	hexID := chains.IDToHex(chains.NormalizeChainID(targetID))
	if hexID == "" {
		return errors.Newf("provider: invalid chain id %q", targetID)
	}

	err := p.Call(ctx, nil, "wallet_switchEthereumChain", switchChainParam{ChainID: hexID})
	if err == nil || !isChainNotAdded(err) {
		return err
	}

	ch, ok := reg.Lookup(targetID)
	if !ok {
		// Nothing to add the chain from; surface the wallet's refusal.
		return err
	}

	add := addChainParam{
		ChainID:   hexID,
		ChainName: ch.Name,
		NativeCurrency: nativeCurrency{
			Name:     ch.Symbol,
			Symbol:   ch.Symbol,
			Decimals: constants.NativeDecimals,
		},
	}
	if ch.RpcURL != "" {
		add.RpcURLs = []string{ch.RpcURL}
	}
	if ch.Explorer != "" {
		add.BlockExplorerURLs = []string{ch.Explorer}
	}

	if addErr := p.Call(ctx, nil, "wallet_addEthereumChain", add); addErr != nil {
		return errors.Wrapf(addErr, "add chain %s to wallet", targetID)
	}
	return p.Call(ctx, nil, "wallet_switchEthereumChain", switchChainParam{ChainID: hexID})
}

func isChainNotAdded(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == constants.ErrCodeChainNotAdded
}
