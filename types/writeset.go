package types

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// WriteOp is an instruction to set or delete the value at an access
// path. The set of variants is closed.
type WriteOp interface {
	fmt.Stringer
	isWriteOp()
}

// WriteOpValue sets the value at an access path to the given bytes.
type WriteOpValue []byte

// WriteOpDeletion deletes the value at an access path.
type WriteOpDeletion struct{}

func (WriteOpValue) isWriteOp()    {}
func (WriteOpDeletion) isWriteOp() {}

func (op WriteOpValue) String() string {
	return fmt.Sprintf("Value(%s)", hex.EncodeToString(op))
}

func (WriteOpDeletion) String() string {
	return "Deletion"
}

// WriteSetEntry is one (access path, write op) pair of a write set.
type WriteSetEntry struct {
	AccessPath AccessPath
	Op         WriteOp
}

// WriteSetMut accumulates write operations before they are frozen into
// an immutable WriteSet.
type WriteSetMut struct {
	entries []WriteSetEntry
}

// NewWriteSetMut returns an empty write set builder.
func NewWriteSetMut() *WriteSetMut {
	return &WriteSetMut{}
}

// Push appends a write operation. Order is preserved through Freeze.
func (ws *WriteSetMut) Push(path AccessPath, op WriteOp) {
	ws.entries = append(ws.entries, WriteSetEntry{AccessPath: path, Op: op})
}

// Freeze checks the write set's structural invariants and returns the
// immutable result. It fails if two entries share an access path,
// which would make the batch ambiguous.
func (ws *WriteSetMut) Freeze() (*WriteSet, error) {
	seen := make(map[string]struct{}, len(ws.entries))
	for _, entry := range ws.entries {
		key := entry.AccessPath.Key()
		if _, ok := seen[key]; ok {
			return nil, errors.Errorf("duplicate access path %s in write set",
				entry.AccessPath)
		}
		seen[key] = struct{}{}
	}

	frozen := make([]WriteSetEntry, len(ws.entries))
	copy(frozen, ws.entries)
	return &WriteSet{entries: frozen}, nil
}

// WriteSet is an ordered, immutable batch of write operations with
// unique access paths.
type WriteSet struct {
	entries []WriteSetEntry
}

// Entries returns the ordered write operations. Callers must not
// mutate the returned slice.
func (ws *WriteSet) Entries() []WriteSetEntry {
	return ws.entries
}

// Len returns the number of write operations in the set.
func (ws *WriteSet) Len() int {
	return len(ws.entries)
}

// ContractEvent is an event emitted alongside a state change.
type ContractEvent struct {
	Key            []byte
	SequenceNumber uint64
	TypeTag        TypeTag
	Data           []byte
}

// ChangeSet is an atomic state-update batch: a write set plus the
// events emitted with it. It is the payload handed to the external
// genesis/writeset-transaction mechanism.
type ChangeSet struct {
	writeSet *WriteSet
	events   []ContractEvent
}

// NewChangeSet wraps a frozen write set and its events.
func NewChangeSet(writeSet *WriteSet, events []ContractEvent) *ChangeSet {
	return &ChangeSet{writeSet: writeSet, events: events}
}

// WriteSet returns the change set's write operations.
func (cs *ChangeSet) WriteSet() *WriteSet {
	return cs.writeSet
}

// Events returns the change set's events. Callers must not mutate the
// returned slice.
func (cs *ChangeSet) Events() []ContractEvent {
	return cs.events
}
