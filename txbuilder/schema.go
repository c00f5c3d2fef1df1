package txbuilder

import (
	"github.com/calibranet/calibrad/stdscript"
	"github.com/calibranet/calibrad/types"
	"github.com/pkg/errors"
)

// argKind is the declared kind of one script argument.
type argKind uint8

const (
	argU64 argKind = iota
	argAddress
	argBytes
	argBool
)

func (kind argKind) String() string {
	switch kind {
	case argU64:
		return "U64"
	case argAddress:
		return "Address"
	case argBytes:
		return "Bytes"
	case argBool:
		return "Bool"
	}
	return "Unknown"
}

// argSchema declares a script's call signature: how many type
// parameters it takes and the exact kind and order of its arguments.
type argSchema struct {
	typeArgArity int
	args         []argKind
}

// scriptSchemas declares the call signature of every registered script.
// Argument order here mirrors the interpreter's expected signatures and
// must never be reordered independently of a coordinated stdlib
// release.
var scriptSchemas = map[stdscript.ScriptID]argSchema{
	stdscript.AddCurrencyToAccount:             {typeArgArity: 1},
	stdscript.AddValidator:                     {args: []argKind{argAddress}},
	stdscript.Burn:                             {typeArgArity: 1, args: []argKind{argU64, argAddress}},
	stdscript.BurnTxnFees:                      {typeArgArity: 1},
	stdscript.CancelBurn:                       {typeArgArity: 1, args: []argKind{argAddress}},
	stdscript.CreateChildVASPAccount:           {typeArgArity: 1, args: []argKind{argAddress, argBytes, argBool, argU64}},
	stdscript.CreateDesignatedDealer:           {typeArgArity: 1, args: []argKind{argU64, argAddress, argBytes}},
	stdscript.CreateParentVASPAccount:          {typeArgArity: 1, args: []argKind{argAddress, argBytes, argBytes, argBytes, argBytes, argBool}},
	stdscript.FreezeAccount:                    {args: []argKind{argU64, argAddress}},
	stdscript.Mint:                             {typeArgArity: 1, args: []argKind{argAddress, argBytes, argU64}},
	stdscript.MintLBR:                          {args: []argKind{argU64}},
	stdscript.MintLBRToAddress:                 {args: []argKind{argAddress, argBytes, argU64}},
	stdscript.ModifyPublishingOption:           {args: []argKind{argBytes}},
	stdscript.PeerToPeerWithMetadata:           {typeArgArity: 1, args: []argKind{argAddress, argU64, argBytes, argBytes}},
	stdscript.Preburn:                          {typeArgArity: 1, args: []argKind{argU64}},
	stdscript.PublishSharedEd25519PublicKey:    {args: []argKind{argBytes}},
	stdscript.RegisterPreburner:                {typeArgArity: 1},
	stdscript.RegisterValidator:                {args: []argKind{argBytes, argBytes, argBytes, argBytes, argBytes}},
	stdscript.RemoveValidator:                  {args: []argKind{argAddress}},
	stdscript.RotateAuthenticationKey:          {args: []argKind{argBytes}},
	stdscript.RotateAuthenticationKeyWithNonce: {args: []argKind{argU64, argBytes}},
	stdscript.RotateBaseURL:                    {args: []argKind{argBytes}},
	stdscript.RotateCompliancePublicKey:        {args: []argKind{argBytes}},
	stdscript.RotateConsensusPubkey:            {args: []argKind{argBytes}},
	stdscript.RotateSharedEd25519PublicKey:     {args: []argKind{argBytes}},
	stdscript.TieredMint:                       {typeArgArity: 1, args: []argKind{argU64, argAddress, argU64, argU64}},
	stdscript.UnfreezeAccount:                  {args: []argKind{argU64, argAddress}},
	stdscript.UnmintLBR:                        {args: []argKind{argU64}},
	stdscript.UpdateExchangeRate:               {typeArgArity: 1, args: []argKind{argU64, argU64}},
	stdscript.UpdateMintingAbility:             {typeArgArity: 1, args: []argKind{argBool}},
	stdscript.UpdateChainVersion:               {args: []argKind{argU64}},
}

func kindOf(arg types.TransactionArgument) argKind {
	switch arg.(type) {
	case types.U64Argument:
		return argU64
	case types.AddressArgument:
		return argAddress
	case types.BytesArgument:
		return argBytes
	case types.BoolArgument:
		return argBool
	}
	panic(errors.Errorf("this should never happen. TransactionArgument is a closed sum, got %T", arg))
}

// encodeWithSchema asserts the supplied type parameters and arguments
// against the script's declared schema and assembles the Script. The
// typed encoders are the only callers, so a mismatch is a defect in
// this package, not caller input: it panics.
func encodeWithSchema(id stdscript.ScriptID, typeArgs []types.TypeTag, args []types.TransactionArgument) *types.Script {
	schema, ok := scriptSchemas[id]
	if !ok {
		panic(errors.Errorf("no argument schema declared for script %s", id))
	}
	if len(typeArgs) != schema.typeArgArity {
		panic(errors.Errorf("script %s takes %d type arguments, got %d",
			id, schema.typeArgArity, len(typeArgs)))
	}
	if len(args) != len(schema.args) {
		panic(errors.Errorf("script %s takes %d arguments, got %d",
			id, len(schema.args), len(args)))
	}
	for i, arg := range args {
		if kindOf(arg) != schema.args[i] {
			panic(errors.Errorf("script %s argument %d must be %s, got %s",
				id, i, schema.args[i], kindOf(arg)))
		}
	}
	return types.NewScript(stdscript.Bytecode(id), typeArgs, args)
}
