// Package chains is the static registry of networks callpad knows how to
// display and how to describe to the wallet when adding a chain.
package chains

import (
	"math/big"
	"strings"

	"github.com/callpad-io/callpad/internal/constants"
)

// Chain describes one network. ID is always the decimal chain identifier;
// it is the registry key and must be unique.
type Chain struct {
	ID       string `json:"id" yaml:"id" mapstructure:"id"`
	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	RpcURL   string `json:"rpcUrl,omitempty" yaml:"rpcUrl" mapstructure:"rpcUrl"`
	Explorer string `json:"explorer,omitempty" yaml:"explorer" mapstructure:"explorer"`
	Symbol   string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
}

// ChainIDHex renders the decimal ID as the 0x-prefixed hex quantity the
// wallet RPC methods expect. Empty or malformed IDs yield "".
func (c Chain) ChainIDHex() string {
	return IDToHex(c.ID)
}

// NormalizeChainID maps any chain id representation to its decimal string
// form. Hex-prefixed input is parsed base-16; everything else is returned
// trimmed and untouched.
func NormalizeChainID(id string) string {
	s := strings.TrimSpace(id)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return s
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return s
	}
	return v.String()
}

// IDToHex converts a decimal chain id to a 0x hex quantity ("56" -> "0x38").
func IDToHex(id string) string {
	v, ok := new(big.Int).SetString(strings.TrimSpace(id), 10)
	if !ok {
		return ""
	}
	return "0x" + v.Text(16)
}

func normalizeChain(c Chain) Chain {
	c.ID = NormalizeChainID(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.RpcURL = strings.TrimSpace(c.RpcURL)
	c.Explorer = strings.TrimSpace(c.Explorer)
	c.Symbol = strings.TrimSpace(c.Symbol)
	if c.Symbol == "" {
		c.Symbol = constants.DefaultSymbol
	}
	return c
}
