package validate

import "testing"

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"checksummed", "0x6B175474E89094C44Da98b954EedeAC495271d0F", true},
		{"lowercase", "0x6b175474e89094c44da98b954eedeac495271d0f", true},
		{"zero address", "0x0000000000000000000000000000000000000000", true},
		{"too short", "0x6B175474E89094C44Da98b954EedeAC495271d0", false},
		{"too long", "0x6B175474E89094C44Da98b954EedeAC495271d0Fa", false},
		{"missing prefix", "6B175474E89094C44Da98b954EedeAC495271d0F", false},
		{"non-hex char", "0x6B175474E89094C44Da98b954EedeAC495271d0Z", false},
		{"empty", "", false},
		{"prefix only", "0x", false},
		{"whitespace", " 0x6B175474E89094C44Da98b954EedeAC495271d0F", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.in); got != tt.want {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidCalldata(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty payload", "0x", true},
		{"selector only", "0xa9059cbb", true},
		{"odd length allowed", "0xa9059cb", true},
		{"full calldata", "0xa9059cbb000000000000000000000000ab5801a7d398351b8be11c439e05c5b3259aec9b", true},
		{"missing prefix", "a9059cbb", false},
		{"non-hex char", "0xa9059cbg", false},
		{"empty string", "", false},
		{"spaces inside", "0xa9 59cbb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCalldata(tt.in); got != tt.want {
				t.Errorf("IsValidCalldata(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
