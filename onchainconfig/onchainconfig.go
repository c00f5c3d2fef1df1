// Package onchainconfig holds the on-chain configuration values that
// system scripts carry as serialized payloads. The payload encoding is
// deterministic CBOR: unlike the script bytecode, this format is owned
// by this repository, but it still must encode identically on every
// machine because validators compare the resulting transactions byte
// for byte.
package onchainconfig

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. CBOR encoding options are constant"))
	}
	return em
}()

// PublishingMode controls which scripts and modules the chain accepts
// from ordinary transactions.
type PublishingMode uint8

const (
	// ModeLocked accepts only the allowlisted script hashes and no
	// module publishing.
	ModeLocked PublishingMode = iota

	// ModeCustomScripts accepts any script but no module publishing.
	ModeCustomScripts

	// ModeOpen accepts any script and module publishing.
	ModeOpen
)

// PublishingOption is the on-chain publishing configuration.
type PublishingOption struct {
	Mode                PublishingMode `cbor:"1,keyasint"`
	AllowedScriptHashes [][]byte       `cbor:"2,keyasint,omitempty"`
}

// LockedPublishingOption allows only the given script hashes.
func LockedPublishingOption(allowedScriptHashes [][]byte) PublishingOption {
	return PublishingOption{
		Mode:                ModeLocked,
		AllowedScriptHashes: allowedScriptHashes,
	}
}

// CustomScriptsPublishingOption allows arbitrary scripts but no module
// publishing.
func CustomScriptsPublishingOption() PublishingOption {
	return PublishingOption{Mode: ModeCustomScripts}
}

// OpenPublishingOption allows arbitrary scripts and module publishing.
func OpenPublishingOption() PublishingOption {
	return PublishingOption{Mode: ModeOpen}
}

// CanonicalBytes returns the deterministic encoding of the option, the
// payload the modify-publishing-option script carries.
func (opt PublishingOption) CanonicalBytes() ([]byte, error) {
	encoded, err := encMode.Marshal(opt)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't encode publishing option")
	}
	return encoded, nil
}

// ChainVersion is the on-chain protocol version number.
type ChainVersion struct {
	Major uint64
}
