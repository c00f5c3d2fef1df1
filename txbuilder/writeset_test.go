package txbuilder

import (
	"bytes"
	"testing"

	"github.com/calibranet/calibrad/stdlib"
	"github.com/calibranet/calibrad/types"
)

func TestEncodeStdlibUpgradeTransaction(t *testing.T) {
	for _, option := range []stdlib.Option{stdlib.Latest, stdlib.Staged} {
		modules := stdlib.Modules(option)
		changeSet := EncodeStdlibUpgradeTransaction(option)

		if len(changeSet.Events()) != 0 {
			t.Errorf("option %d: got %d events, want 0", option, len(changeSet.Events()))
		}

		entries := changeSet.WriteSet().Entries()
		if len(entries) != len(modules) {
			t.Fatalf("option %d: got %d write ops for %d modules",
				option, len(entries), len(modules))
		}

		seenPaths := make(map[string]struct{}, len(entries))
		for i, entry := range entries {
			module := modules[i]
			wantPath := types.CodeAccessPath(module.ID())
			if entry.AccessPath.Key() != wantPath.Key() {
				t.Errorf("option %d, module %s: write op keyed by %s, want %s",
					option, module.ID(), entry.AccessPath, wantPath)
			}

			if _, ok := seenPaths[entry.AccessPath.Key()]; ok {
				t.Errorf("option %d: duplicate access path %s", option, entry.AccessPath)
			}
			seenPaths[entry.AccessPath.Key()] = struct{}{}

			value, ok := entry.Op.(types.WriteOpValue)
			if !ok {
				t.Errorf("option %d, module %s: got %T, want WriteOpValue",
					option, module.ID(), entry.Op)
				continue
			}
			wantValue, err := module.Serialize()
			if err != nil {
				t.Fatalf("Serialize(%s): %+v", module.ID(), err)
			}
			if !bytes.Equal(value, wantValue) {
				t.Errorf("option %d, module %s: payload differs from the module's serialization",
					option, module.ID())
			}
		}
	}
}

func TestEncodeStdlibUpgradeTransactionIsDeterministic(t *testing.T) {
	first := EncodeStdlibUpgradeTransaction(stdlib.Latest).WriteSet().Entries()
	second := EncodeStdlibUpgradeTransaction(stdlib.Latest).WriteSet().Entries()
	if len(first) != len(second) {
		t.Fatal("write set length is not stable across invocations")
	}
	for i := range first {
		if first[i].AccessPath.Key() != second[i].AccessPath.Key() {
			t.Errorf("write op %d keyed differently across invocations", i)
		}
	}
}
