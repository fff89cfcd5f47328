package constants

const (
	AppName = "callpad"

	// NativeDecimals is the fixed-point scale of the chain's native unit.
	// Every supported network today uses an 18-decimal native currency.
	NativeDecimals = 18

	// DefaultSymbol is shown when a chain is unknown or no chain is active.
	DefaultSymbol = "ETH"

	// EmptyCode is the eth_getCode sentinel for an address with no bytecode.
	EmptyCode = "0x"

	// EIP-1193 provider error codes.
	ErrCodeUserRejected  = 4001
	ErrCodeChainNotAdded = 4902
)
