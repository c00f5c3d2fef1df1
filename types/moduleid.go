package types

import "fmt"

// ModuleID is the canonical identifier of a published module: the
// address it is published under and its name within that address.
type ModuleID struct {
	Address AccountAddress
	Name    string
}

// NewModuleID returns the identifier for the module name published
// under address.
func NewModuleID(address AccountAddress, name string) ModuleID {
	return ModuleID{Address: address, Name: name}
}

// CanonicalBytes returns the canonical serialization of the module
// identifier: the raw address bytes followed by the length-prefixed
// module name. Code access paths are keyed by the digest of these
// bytes, so the layout is part of the compatibility contract.
func (id ModuleID) CanonicalBytes() []byte {
	serialized := make([]byte, 0, AddressLength+1+len(id.Name))
	serialized = append(serialized, id.Address[:]...)
	serialized = appendString(serialized, id.Name)
	return serialized
}

func (id ModuleID) String() string {
	return fmt.Sprintf("0x%s::%s", id.Address, id.Name)
}
