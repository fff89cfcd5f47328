package chains

import (
	"sort"
	"strings"

	"github.com/callpad-io/callpad/internal/constants"
)

var builtin = []Chain{
	// Ethereum
	{ID: "1", Name: "Ethereum Mainnet", Explorer: "https://etherscan.io", Symbol: "ETH"},
	{ID: "11155111", Name: "Sepolia", Explorer: "https://sepolia.etherscan.io", Symbol: "ETH"},

	// Layer 2s (Ethereum-aligned)
	{ID: "42161", Name: "Arbitrum One", Explorer: "https://arbiscan.io", Symbol: "ETH"},
	{ID: "10", Name: "OP Mainnet", Explorer: "https://optimistic.etherscan.io", Symbol: "ETH"},
	{ID: "8453", Name: "Base", Explorer: "https://basescan.org", Symbol: "ETH"},

	// Other EVM mainnets
	{ID: "56", Name: "BNB Smart Chain", Explorer: "https://bscscan.com", Symbol: "BNB"},
	{ID: "137", Name: "Polygon", Explorer: "https://polygonscan.com", Symbol: "POL"},
	{ID: "43114", Name: "Avalanche C-Chain", Explorer: "https://snowtrace.io", Symbol: "AVAX"},
}

// Registry is the immutable-after-startup chain table, keyed by the
// normalized decimal chain id.
type Registry struct {
	byID map[string]Chain
}

// NewRegistry returns a registry seeded with the built-in networks.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Chain, len(builtin))}
	for _, c := range builtin {
		r.byID[c.ID] = normalizeChain(c)
	}
	return r
}

// Merge folds config-provided networks into the registry. Existing entries
// only have blank fields filled, never overwritten; unknown ids are added.
func (r *Registry) Merge(extra []Chain) {
	for _, in := range extra {
		c := normalizeChain(in)
		if c.ID == "" {
			continue
		}

		existing, ok := r.byID[c.ID]
		if !ok {
			r.byID[c.ID] = c
			continue
		}
		if existing.Name == "" {
			existing.Name = c.Name
		}
		if existing.RpcURL == "" {
			existing.RpcURL = c.RpcURL
		}
		if existing.Explorer == "" {
			existing.Explorer = c.Explorer
		}
		if existing.Symbol == "" || existing.Symbol == constants.DefaultSymbol {
			if c.Symbol != "" {
				existing.Symbol = c.Symbol
			}
		}
		r.byID[c.ID] = existing
	}
}

// Lookup normalizes id and returns the matching descriptor.
func (r *Registry) Lookup(id string) (Chain, bool) {
	c, ok := r.byID[NormalizeChainID(id)]
	return c, ok
}

// IsSupported reports whether id resolves to a registered chain.
func (r *Registry) IsSupported(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// CurrencySymbolFor returns the native currency symbol for id, falling
// back to the default symbol when id is empty or unknown.
func (r *Registry) CurrencySymbolFor(id string) string {
	if strings.TrimSpace(id) == "" {
		return constants.DefaultSymbol
	}
	c, ok := r.Lookup(id)
	if !ok || c.Symbol == "" {
		return constants.DefaultSymbol
	}
	return c.Symbol
}

// All returns every registered chain in deterministic order (nice for
// testing / stable JSON).
func (r *Registry) All() []Chain {
	out := make([]Chain, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
