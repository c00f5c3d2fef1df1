package types

import (
	"testing"
)

func TestAccountAddressSetBytes(t *testing.T) {
	var addr AccountAddress
	if err := addr.SetBytes(make([]byte, AddressLength)); err != nil {
		t.Errorf("SetBytes with %d bytes: unexpected error %v", AddressLength, err)
	}
	for _, length := range []int{0, AddressLength - 1, AddressLength + 1, 32} {
		if err := addr.SetBytes(make([]byte, length)); err == nil {
			t.Errorf("SetBytes with %d bytes: expected error", length)
		}
	}
}

func TestAccountAddressStringRoundTrip(t *testing.T) {
	original := AccountAddress{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	decoded, err := NewAccountAddressFromString(original.String())
	if err != nil {
		t.Fatalf("NewAccountAddressFromString(%s): %v", original, err)
	}
	if decoded != original {
		t.Errorf("round trip: got %s, want %s", decoded, original)
	}
}

func TestNewAccountAddressFromStringErrors(t *testing.T) {
	tests := []string{
		"",
		"zz",
		"00112233445566778899aabbccddee",     // too short
		"00112233445566778899aabbccddeeff00", // too long
	}
	for _, test := range tests {
		if _, err := NewAccountAddressFromString(test); err == nil {
			t.Errorf("NewAccountAddressFromString(%q): expected error", test)
		}
	}
}
