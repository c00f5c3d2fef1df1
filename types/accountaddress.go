package types

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// AddressLength is the length in bytes of an on-chain account address.
const AddressLength = 16

// AccountAddress identifies an account on the chain. It is derived from
// the last AddressLength bytes of the account's authentication key.
type AccountAddress [AddressLength]byte

// CoreCodeAddress is the address under which the standard library and
// the registered currency modules live.
var CoreCodeAddress = AccountAddress{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
}

// String returns the address as a hexadecimal string.
func (addr AccountAddress) String() string {
	return hex.EncodeToString(addr[:])
}

// SetBytes sets the bytes which represent the address. An error is
// returned if the number of bytes passed in is not AddressLength.
func (addr *AccountAddress) SetBytes(newAddress []byte) error {
	if len(newAddress) != AddressLength {
		return errors.Errorf("invalid address length of %d, want %d",
			len(newAddress), AddressLength)
	}
	copy(addr[:], newAddress)
	return nil
}

// NewAccountAddress returns a new address from a byte slice. An error is
// returned if the number of bytes passed in is not AddressLength.
func NewAccountAddress(addressBytes []byte) (AccountAddress, error) {
	var addr AccountAddress
	err := addr.SetBytes(addressBytes)
	return addr, err
}

// NewAccountAddressFromString creates an address from its hexadecimal
// string representation.
func NewAccountAddressFromString(addressString string) (AccountAddress, error) {
	var addr AccountAddress
	addressBytes, err := hex.DecodeString(addressString)
	if err != nil {
		return addr, errors.Wrap(err, "couldn't decode address hex")
	}
	err = addr.SetBytes(addressBytes)
	return addr, err
}
