package delegation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpad-io/callpad/internal/provider"
)

const testAddr = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

// codeServer answers every eth_getCode with a fixed result; a non-200
// status simulates a broken endpoint.
func codeServer(t *testing.T, code string, fail bool) (*provider.Provider, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  code,
		})
	}))
	p, err := provider.Dial(context.Background(), srv.URL)
	require.NoError(t, err)
	return p, func() {
		p.Close()
		srv.Close()
	}
}

func TestHasDeployedCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		fail bool
		want bool
	}{
		{"contract code", "0x6080604052", false, true},
		{"delegation designator", "0xef0100ab5801a7d398351b8be11c439e05c5b3259aec9b", false, true},
		{"empty sentinel", "0x", false, false},
		{"empty string", "", false, false},
		{"query failure", "0x6080", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, done := codeServer(t, tt.code, tt.fail)
			defer done()
			assert.Equal(t, tt.want, HasDeployedCode(context.Background(), p, testAddr))
			assert.Equal(t, tt.want, IsDelegatedAccount(context.Background(), p, testAddr))
		})
	}
}

func TestHasDeployedCodeNilProvider(t *testing.T) {
	assert.False(t, HasDeployedCode(context.Background(), nil, testAddr))
}

func TestParseDelegation(t *testing.T) {
	delegate := "ab5801a7d398351b8be11c439e05c5b3259aec9b"

	addr, ok := ParseDelegation("0xef0100" + delegate)
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress(delegate), addr)

	// Case and whitespace are tolerated.
	addr, ok = ParseDelegation("  0xEF0100" + delegate + " ")
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress(delegate), addr)

	for _, bad := range []string{
		"",
		"0x",
		"0x6080604052",
		"0xef0100",                   // prefix without address
		"0xef0100" + delegate + "ff", // too long
		"0xef0200" + delegate,        // wrong prefix
		"0xzz0100" + delegate,        // not hex
	} {
		_, ok := ParseDelegation(bad)
		assert.False(t, ok, "code %q", bad)
	}
}

func TestDelegateOf(t *testing.T) {
	delegate := "ab5801a7d398351b8be11c439e05c5b3259aec9b"
	p, done := codeServer(t, "0xef0100"+delegate, false)
	defer done()

	addr, ok := DelegateOf(context.Background(), p, testAddr)
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress(delegate), addr)

	p2, done2 := codeServer(t, "0x6080604052", false)
	defer done2()
	_, ok = DelegateOf(context.Background(), p2, testAddr)
	assert.False(t, ok, "plain contract code is not a delegation")
}
