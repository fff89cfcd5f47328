// Package delegation detects EIP-7702 upgraded accounts: externally-owned
// accounts that currently carry deployed bytecode.
package delegation

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/callpad-io/callpad/internal/constants"
	"github.com/callpad-io/callpad/internal/provider"
)

// delegationPrefix is the EIP-7702 designator: 0xef0100 followed by the
// 20-byte delegate address.
var delegationPrefix = []byte{0xef, 0x01, 0x00}

const delegationCodeLength = 23

// HasDeployedCode reports whether address has any bytecode on the latest
// block. Query failures yield false; this is a best-effort signal only.
func HasDeployedCode(ctx context.Context, p *provider.Provider, address string) bool {
	if p == nil {
		return false
	}
	code, err := p.CodeAt(ctx, address)
	if err != nil {
		return false
	}
	return code != "" && code != constants.EmptyCode
}

// IsDelegatedAccount is the heuristic use of HasDeployedCode: an account
// with code that is nominally an EOA has been upgraded with delegated logic.
func IsDelegatedAccount(ctx context.Context, p *provider.Provider, address string) bool {
	return HasDeployedCode(ctx, p, address)
}

// ParseDelegation extracts the delegate address from an EIP-7702
// designator. Returns false for anything that is not exactly
// 0xef0100 || address.
func ParseDelegation(code string) (common.Address, bool) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(code)), "0x"))
	if err != nil {
		return common.Address{}, false
	}
	if len(raw) != delegationCodeLength || !bytes.HasPrefix(raw, delegationPrefix) {
		return common.Address{}, false
	}
	return common.BytesToAddress(raw[len(delegationPrefix):]), true
}

// DelegateOf returns the address an account's code delegates to, when its
// code is an EIP-7702 designator.
func DelegateOf(ctx context.Context, p *provider.Provider, address string) (common.Address, bool) {
	if p == nil {
		return common.Address{}, false
	}
	code, err := p.CodeAt(ctx, address)
	if err != nil {
		return common.Address{}, false
	}
	return ParseDelegation(code)
}
