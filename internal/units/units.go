// Package units converts between human-readable decimal amounts and the
// integer base-unit representation the wallet expects on the wire.
package units

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/callpad-io/callpad/internal/constants"
)

// ConversionError reports a malformed amount. It is the only error kind
// this package produces.
type ConversionError struct {
	Input  string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("units: cannot convert %q: %s", e.Input, e.Reason)
}

var scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(constants.NativeDecimals), nil)

// ToBaseUnits parses a non-negative decimal numeral like "1.5" and returns
// the equivalent base-unit integer as a decimal string ("1500000000000000000").
func ToBaseUnits(amount string) (string, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return "", &ConversionError{Input: amount, Reason: "empty amount"}
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return "", &ConversionError{Input: amount, Reason: "sign not allowed"}
	}
	if strings.Count(s, ".") > 1 {
		return "", &ConversionError{Input: amount, Reason: "multiple decimal points"}
	}

	intStr, fracStr, _ := strings.Cut(s, ".")
	if intStr == "" && fracStr == "" {
		return "", &ConversionError{Input: amount, Reason: "no digits"}
	}
	if intStr == "" {
		intStr = "0"
	}
	if !isDigits(intStr) || (fracStr != "" && !isDigits(fracStr)) {
		return "", &ConversionError{Input: amount, Reason: "not a decimal numeral"}
	}
	if len(fracStr) > constants.NativeDecimals {
		return "", &ConversionError{
			Input:  amount,
			Reason: fmt.Sprintf("more than %d fractional digits", constants.NativeDecimals),
		}
	}

	intPart, ok := new(big.Int).SetString(intStr, 10)
	if !ok {
		return "", &ConversionError{Input: amount, Reason: "not a decimal numeral"}
	}

	out := new(big.Int).Mul(intPart, scale)
	if fracStr != "" {
		// Right-pad the fraction to the full scale before adding.
		padded := fracStr + strings.Repeat("0", constants.NativeDecimals-len(fracStr))
		fracPart, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return "", &ConversionError{Input: amount, Reason: "not a decimal numeral"}
		}
		out.Add(out, fracPart)
	}
	return out.String(), nil
}

// FromBaseUnits formats a base-unit integer string back into a decimal
// amount with trailing zeros trimmed:
//
//	"1234500000000000000" -> "1.2345"
//	"1000000000000000000" -> "1"
//	"1"                   -> "0.000000000000000001"
func FromBaseUnits(amount string) (string, error) {
	s := strings.TrimSpace(amount)
	if s == "" || !isDigits(s) {
		return "", &ConversionError{Input: amount, Reason: "not a base-unit integer"}
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", &ConversionError{Input: amount, Reason: "not a base-unit integer"}
	}

	intPart := new(big.Int).Div(v, scale)
	fracPart := new(big.Int).Mod(v, scale)
	if fracPart.Sign() == 0 {
		return intPart.String(), nil
	}

	fracStr := fracPart.String()
	if len(fracStr) < constants.NativeDecimals {
		fracStr = strings.Repeat("0", constants.NativeDecimals-len(fracStr)) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		return intPart.String(), nil
	}
	return intPart.String() + "." + fracStr, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
