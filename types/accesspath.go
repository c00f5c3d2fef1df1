package types

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Kind bytes prefixed to an access path to separate the code and
// resource namespaces of an account's storage.
const (
	// CodeTag marks an access path addressing published module code.
	CodeTag = 0x00

	// ResourceTag marks an access path addressing a stored resource.
	ResourceTag = 0x01
)

// AccessPath identifies one slot of on-chain state: an account address
// plus a path within that account's storage.
type AccessPath struct {
	Address AccountAddress
	Path    []byte
}

// CodeAccessPath returns the access path under which the module
// identified by id is published. The path is the code tag followed by
// the SHA3-256 digest of the module identifier's canonical bytes, so
// distinct modules always resolve to distinct paths.
func CodeAccessPath(id ModuleID) AccessPath {
	digest := sha3.Sum256(id.CanonicalBytes())
	path := make([]byte, 0, 1+len(digest))
	path = append(path, CodeTag)
	path = append(path, digest[:]...)
	return AccessPath{Address: id.Address, Path: path}
}

// Key returns a representation of the access path usable as a map key.
func (ap AccessPath) Key() string {
	return string(ap.Address[:]) + string(ap.Path)
}

func (ap AccessPath) String() string {
	return fmt.Sprintf("%s/%s", ap.Address, hex.EncodeToString(ap.Path))
}
