package txbuilder

import (
	"github.com/calibranet/calibrad/types"
	"github.com/pkg/errors"
)

// IsValidAuthKeyPrefix reports whether authKeyPrefix has a length that
// can combine with an account address into a full authentication key:
// empty, or exactly AuthKeyPrefixLength bytes. Front ends that accept
// key material from outside should check this before calling an
// encoder.
func IsValidAuthKeyPrefix(authKeyPrefix []byte) bool {
	return len(authKeyPrefix) == 0 || len(authKeyPrefix) == types.AuthKeyPrefixLength
}

// validateAuthKeyPrefix enforces the prefix-length invariant. The
// encoders only receive prefixes produced from freshly generated keys,
// so a violation means broken caller code rather than bad user input
// and panics.
func validateAuthKeyPrefix(authKeyPrefix []byte) {
	if !IsValidAuthKeyPrefix(authKeyPrefix) {
		panic(errors.Errorf("bad auth key prefix length %d, want 0 or %d",
			len(authKeyPrefix), types.AuthKeyPrefixLength))
	}
}
