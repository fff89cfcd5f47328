// Package validate holds the input predicates applied to user-supplied
// transaction fields before anything is sent to the wallet.
package validate

import "regexp"

var (
	addressRe  = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	calldataRe = regexp.MustCompile(`^0x[a-fA-F0-9]*$`)
)

// IsValidAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// IsValidCalldata reports whether s is 0x followed by any number of hex
// characters. "0x" alone is valid calldata.
func IsValidCalldata(s string) bool {
	return calldataRe.MatchString(s)
}
