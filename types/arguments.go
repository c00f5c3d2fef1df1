package types

import (
	"encoding/hex"
	"fmt"
)

// TransactionArgument is one typed value passed to a script. The
// interpreter accepts exactly four primitive argument kinds, so the set
// of variants is closed. The tag and position of every argument are
// part of the wire contract with the interpreter.
type TransactionArgument interface {
	fmt.Stringer
	isTransactionArgument()
}

// U64Argument is an unsigned 64-bit integer argument.
type U64Argument uint64

// AddressArgument is an account address argument.
type AddressArgument AccountAddress

// BytesArgument is a byte vector argument.
type BytesArgument []byte

// BoolArgument is a boolean argument.
type BoolArgument bool

func (U64Argument) isTransactionArgument()     {}
func (AddressArgument) isTransactionArgument() {}
func (BytesArgument) isTransactionArgument()   {}
func (BoolArgument) isTransactionArgument()    {}

func (arg U64Argument) String() string {
	return fmt.Sprintf("{U64: %d}", uint64(arg))
}

func (arg AddressArgument) String() string {
	return fmt.Sprintf("{ADDRESS: %s}", AccountAddress(arg))
}

func (arg BytesArgument) String() string {
	return fmt.Sprintf("{U8Vector: 0x%s}", hex.EncodeToString(arg))
}

func (arg BoolArgument) String() string {
	return fmt.Sprintf("{BOOL: %t}", bool(arg))
}
