package http

import "github.com/callpad-io/callpad/internal/chains"

type statusResponse struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account,omitempty"`
	ChainID   string `json:"chainId,omitempty"`
	ChainName string `json:"chainName,omitempty"`
	Symbol    string `json:"symbol"`
	Supported bool   `json:"supported"`
	Endpoint  string `json:"endpoint,omitempty"`
}

type connectResponse struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account"`
	ChainID   string `json:"chainId"`
	ChainName string `json:"chainName,omitempty"`
	Symbol    string `json:"symbol"`
}

type chainsResponse struct {
	Chains []chains.Chain `json:"chains"`
}

type switchChainRequest struct {
	ChainID string `json:"chainId"`
}

type submitRequest struct {
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value,omitempty"`
}

type delegationResponse struct {
	Address    string `json:"address"`
	HasCode    bool   `json:"hasCode"`
	Delegated  bool   `json:"delegated"`
	DelegateTo string `json:"delegateTo,omitempty"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type fieldErrorResponse struct {
	OK          bool              `json:"ok"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

type okResponse struct {
	OK bool `json:"ok"`
}
