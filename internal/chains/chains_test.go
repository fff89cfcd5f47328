package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeChainID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0x1", "1"},
		{"1", "1"},
		{"0x38", "56"},
		{"0X38", "56"},
		{"0xaa36a7", "11155111"},
		{" 137 ", "137"},
		{"0x", "0x"},     // not parseable, returned as-is
		{"0xzz", "0xzz"}, // not parseable, returned as-is
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeChainID(tt.in), "input %q", tt.in)
	}
}

func TestIDToHex(t *testing.T) {
	assert.Equal(t, "0x1", IDToHex("1"))
	assert.Equal(t, "0x38", IDToHex("56"))
	assert.Equal(t, "0xaa36a7", IDToHex("11155111"))
	assert.Equal(t, "", IDToHex("not-a-number"))
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	c, ok := r.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Ethereum Mainnet", c.Name)
	assert.Equal(t, "0x1", c.ChainIDHex())

	// Hex ids resolve through normalization.
	c, ok = r.Lookup("0x38")
	require.True(t, ok)
	assert.Equal(t, "BNB Smart Chain", c.Name)

	assert.True(t, r.IsSupported("1"))
	assert.False(t, r.IsSupported("999999"))
}

func TestCurrencySymbolFor(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "BNB", r.CurrencySymbolFor("56"))
	assert.Equal(t, "POL", r.CurrencySymbolFor("137"))
	assert.Equal(t, "ETH", r.CurrencySymbolFor(""))
	assert.Equal(t, "ETH", r.CurrencySymbolFor("999999"))
}

func TestRegistryMerge(t *testing.T) {
	r := NewRegistry()

	r.Merge([]Chain{
		// Fills the blank rpc url on a built-in, must not overwrite its name.
		{ID: "0x1", Name: "renamed", RpcURL: "https://rpc.example.org"},
		// New entry.
		{ID: "31337", Name: "Localnet", RpcURL: "http://127.0.0.1:8545"},
		// Ignored: no usable id.
		{Name: "orphan"},
	})

	c, ok := r.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Ethereum Mainnet", c.Name)
	assert.Equal(t, "https://rpc.example.org", c.RpcURL)

	c, ok = r.Lookup("31337")
	require.True(t, ok)
	assert.Equal(t, "Localnet", c.Name)
	assert.Equal(t, "ETH", c.Symbol) // default fallback applied on merge

	assert.False(t, r.IsSupported(""))
}

func TestRegistryAllDeterministic(t *testing.T) {
	r := NewRegistry()
	first := r.All()
	second := r.All()
	require.Equal(t, first, second)
	assert.Equal(t, "1", first[0].ID)
}
