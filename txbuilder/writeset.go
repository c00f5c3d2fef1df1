package txbuilder

import (
	"github.com/calibranet/calibrad/stdlib"
	"github.com/calibranet/calibrad/types"
	"github.com/pkg/errors"
)

// EncodeStdlibUpgradeTransaction builds the atomic state-update batch
// publishing the standard-library release selected by option: one
// value write operation per module, keyed by the module's code access
// path, in the module set's fixed order, with no events.
//
// This runs only at genesis/upgrade construction time with trusted
// inputs. A module that cannot be serialized, or two modules resolving
// to the same access path, means the compiled module set itself is
// inconsistent; both conditions panic rather than producing a partial
// upgrade.
func EncodeStdlibUpgradeTransaction(option stdlib.Option) *types.ChangeSet {
	writeSet := types.NewWriteSetMut()
	for _, module := range stdlib.Modules(option) {
		serialized, err := module.Serialize()
		if err != nil {
			panic(errors.Wrapf(err, "couldn't serialize module %s", module.ID()))
		}
		writeSet.Push(types.CodeAccessPath(module.ID()), types.WriteOpValue(serialized))
	}

	frozen, err := writeSet.Freeze()
	if err != nil {
		panic(errors.Wrap(err, "couldn't freeze the stdlib write set"))
	}
	return types.NewChangeSet(frozen, nil)
}
