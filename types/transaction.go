package types

// Transaction is an entry in the ledger's transaction sequence. User
// scripts reach the ledger through the external signing layer; the
// variants here are the system transactions this package can produce
// directly.
type Transaction interface {
	isTransaction()
}

// BlockMetadata carries the consensus metadata published at the start
// of every block.
type BlockMetadata struct {
	ID                 [32]byte
	TimestampUSec      uint64
	PreviousBlockVotes []AccountAddress
	Proposer           AccountAddress
}

// BlockMetadataTransaction is the block-prologue system transaction.
type BlockMetadataTransaction struct {
	Metadata BlockMetadata
}

// ChangeSetTransaction applies a state-update batch directly, bypassing
// script execution. It is only valid at genesis/upgrade time.
type ChangeSetTransaction struct {
	ChangeSet *ChangeSet
}

func (BlockMetadataTransaction) isTransaction() {}
func (ChangeSetTransaction) isTransaction()     {}
