package types

// Script is the executable payload of a transaction: a compiled
// bytecode blob plus the ordered type parameters and arguments it is
// invoked with. A Script is immutable once constructed.
type Script struct {
	code     []byte
	typeArgs []TypeTag
	args     []TransactionArgument
}

// NewScript constructs a Script. The code and argument slices are
// copied, so the caller keeps ownership of what it passed in.
func NewScript(code []byte, typeArgs []TypeTag, args []TransactionArgument) *Script {
	script := &Script{
		code:     make([]byte, len(code)),
		typeArgs: make([]TypeTag, len(typeArgs)),
		args:     make([]TransactionArgument, len(args)),
	}
	copy(script.code, code)
	copy(script.typeArgs, typeArgs)
	copy(script.args, args)
	return script
}

// Code returns the compiled bytecode blob. Callers must not mutate the
// returned slice.
func (s *Script) Code() []byte {
	return s.code
}

// TypeArguments returns the ordered type parameters. Callers must not
// mutate the returned slice.
func (s *Script) TypeArguments() []TypeTag {
	return s.typeArgs
}

// Arguments returns the ordered transaction arguments. Callers must
// not mutate the returned slice.
func (s *Script) Arguments() []TransactionArgument {
	return s.args
}
