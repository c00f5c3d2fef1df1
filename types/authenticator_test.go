package types

import (
	"bytes"
	"testing"
)

func TestAuthenticationKeyRecombines(t *testing.T) {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = byte(i)
	}
	key := NewAuthenticationKey(publicKey, SchemeEd25519)

	prefix := key.Prefix()
	if len(prefix) != AuthKeyPrefixLength {
		t.Fatalf("Prefix: got %d bytes, want %d", len(prefix), AuthKeyPrefixLength)
	}
	addr := key.DerivedAddress()

	recombined := append(append([]byte{}, prefix...), addr[:]...)
	if !bytes.Equal(recombined, key[:]) {
		t.Error("prefix + derived address does not reconstitute the authentication key")
	}
}

func TestAuthenticationKeyIsDeterministic(t *testing.T) {
	publicKey := []byte{0x01, 0x02, 0x03}
	first := NewAuthenticationKey(publicKey, SchemeEd25519)
	second := NewAuthenticationKey(publicKey, SchemeEd25519)
	if first != second {
		t.Error("same inputs produced different authentication keys")
	}
}

func TestSchemeByteSeparatesKeys(t *testing.T) {
	publicKey := []byte{0x01, 0x02, 0x03}
	single := NewAuthenticationKey(publicKey, SchemeEd25519)
	multi := NewAuthenticationKey(publicKey, SchemeMultiEd25519)
	if single == multi {
		t.Error("scheme byte does not separate the key domains")
	}
}
