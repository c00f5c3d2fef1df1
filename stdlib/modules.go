// Package stdlib carries the compiled standard-library modules as
// embedded assets and hands them out grouped by release option. The
// module sets are read-only and iterated in a fixed order, which the
// upgrade writeset builder relies on.
package stdlib

import (
	"bytes"

	"github.com/calibranet/calibrad/types"
	"github.com/pkg/errors"
)

// compiledUnitMagic is the prefix every well-formed compiled unit
// carries. Serialization refuses to emit a module without it.
var compiledUnitMagic = []byte{0xa1, 0x1c, 0xeb, 0x0b}

// Option selects which standard-library release to use.
type Option uint8

const (
	// Latest is the stdlib release compiled into this binary. This is
	// what validators on the running network agree on.
	Latest Option = iota

	// Staged is the pre-release stdlib used to prepare the next
	// upgrade. It may contain modules Latest does not have yet.
	Staged
)

// CompiledModule is one pre-compiled standard-library module: its
// canonical identifier plus its opaque bytecode. Immutable.
type CompiledModule struct {
	id       types.ModuleID
	bytecode []byte
}

// ID returns the module's canonical identifier.
func (m *CompiledModule) ID() types.ModuleID {
	return m.id
}

// Serialize returns the module's canonical byte representation, the
// value published at the module's code access path. It fails if the
// embedded asset is not a well-formed compiled unit.
func (m *CompiledModule) Serialize() ([]byte, error) {
	if !bytes.HasPrefix(m.bytecode, compiledUnitMagic) {
		return nil, errors.Errorf("module %s: bytecode is not a compiled unit", m.id)
	}
	serialized := make([]byte, len(m.bytecode))
	copy(serialized, m.bytecode)
	return serialized, nil
}

func newModule(name string, bytecode []byte) *CompiledModule {
	return &CompiledModule{
		id:       types.NewModuleID(types.CoreCodeAddress, name),
		bytecode: bytecode,
	}
}

var latestModules = []*CompiledModule{
	newModule("Hash", hashModuleBytecode),
	newModule("Signature", signatureModuleBytecode),
	newModule("Vector", vectorModuleBytecode),
	newModule("Event", eventModuleBytecode),
	newModule("Coin", coinModuleBytecode),
	newModule("LBR", lbrModuleBytecode),
	newModule("Account", accountModuleBytecode),
	newModule("ValidatorConfig", validatorConfigModuleBytecode),
	newModule("VASP", vaspModuleBytecode),
}

var stagedModules = append(append([]*CompiledModule{}, latestModules...),
	newModule("AccountLimits", accountLimitsModuleBytecode))

// Modules returns the ordered module set for the given release option.
// The returned slice is a fresh copy; the modules themselves are
// shared, immutable assets.
func Modules(option Option) []*CompiledModule {
	var set []*CompiledModule
	switch option {
	case Latest:
		set = latestModules
	case Staged:
		set = stagedModules
	default:
		panic(errors.Errorf("unknown stdlib option %d", uint8(option)))
	}
	modules := make([]*CompiledModule, len(set))
	copy(modules, set)
	return modules
}
