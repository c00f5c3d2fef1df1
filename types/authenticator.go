package types

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// AuthenticationKeyLength is the length in bytes of a full
// authentication key.
const AuthenticationKeyLength = 32

// AuthKeyPrefixLength is the length in bytes of a non-empty
// authentication key prefix. A prefix concatenated with the derived
// account address reconstitutes the full authentication key.
const AuthKeyPrefixLength = AuthenticationKeyLength - AddressLength

// KeyScheme is the signature scheme domain separator appended to the
// public key material before hashing.
type KeyScheme byte

const (
	// SchemeEd25519 is the single-signature ed25519 scheme.
	SchemeEd25519 KeyScheme = 0

	// SchemeMultiEd25519 is the K-of-N multisig ed25519 scheme.
	SchemeMultiEd25519 KeyScheme = 1
)

// AuthenticationKey is the SHA3-256 digest of an account's public key
// material and its scheme byte. The account address is the last
// AddressLength bytes of the authentication key.
type AuthenticationKey [AuthenticationKeyLength]byte

// NewAuthenticationKey derives the authentication key for the given
// public key bytes under the given scheme.
func NewAuthenticationKey(publicKey []byte, scheme KeyScheme) AuthenticationKey {
	hasher := sha3.New256()
	hasher.Write(publicKey)
	hasher.Write([]byte{byte(scheme)})

	var key AuthenticationKey
	copy(key[:], hasher.Sum(nil))
	return key
}

// Prefix returns the authentication key prefix: everything before the
// derived address portion of the key.
func (key AuthenticationKey) Prefix() []byte {
	prefix := make([]byte, AuthKeyPrefixLength)
	copy(prefix, key[:AuthKeyPrefixLength])
	return prefix
}

// DerivedAddress returns the account address derived from the
// authentication key.
func (key AuthenticationKey) DerivedAddress() AccountAddress {
	var addr AccountAddress
	copy(addr[:], key[AuthKeyPrefixLength:])
	return addr
}

// String returns the authentication key as a hexadecimal string.
func (key AuthenticationKey) String() string {
	return hex.EncodeToString(key[:])
}
