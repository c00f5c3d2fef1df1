package txbuilder

import (
	"bytes"
	"testing"

	"github.com/calibranet/calibrad/onchainconfig"
	"github.com/calibranet/calibrad/stdscript"
	"github.com/calibranet/calibrad/types"
	"github.com/davecgh/go-spew/spew"
)

func testAddress(fill byte) types.AccountAddress {
	var addr types.AccountAddress
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestEncodeAddValidatorScript(t *testing.T) {
	addr := testAddress(0x42)
	script := EncodeAddValidatorScript(addr)

	if !bytes.Equal(script.Code(), stdscript.Bytecode(stdscript.AddValidator)) {
		t.Error("EncodeAddValidatorScript: bytecode differs from the registry blob")
	}
	if len(script.TypeArguments()) != 0 {
		t.Errorf("EncodeAddValidatorScript: got %d type arguments, want 0",
			len(script.TypeArguments()))
	}
	args := script.Arguments()
	if len(args) != 1 {
		t.Fatalf("EncodeAddValidatorScript: got %d arguments, want 1", len(args))
	}
	if got, ok := args[0].(types.AddressArgument); !ok || types.AccountAddress(got) != addr {
		t.Errorf("EncodeAddValidatorScript: argument 0 is %s, want {ADDRESS: %s}",
			args[0], addr)
	}
}

func TestEncodeMintLBRToAddressScript(t *testing.T) {
	addr := testAddress(0x77)

	tests := []struct {
		name          string
		authKeyPrefix []byte
	}{
		{"empty prefix", nil},
		{"full prefix", make([]byte, types.AuthKeyPrefixLength)},
	}
	for _, test := range tests {
		script := EncodeMintLBRToAddressScript(addr, test.authKeyPrefix, 100)
		if !bytes.Equal(script.Code(), stdscript.Bytecode(stdscript.MintLBRToAddress)) {
			t.Errorf("%s: bytecode differs from the registry blob", test.name)
		}
		if len(script.TypeArguments()) != 0 {
			t.Errorf("%s: got %d type arguments, want 0", test.name,
				len(script.TypeArguments()))
		}

		args := script.Arguments()
		if len(args) != 3 {
			t.Fatalf("%s: got %d arguments, want 3", test.name, len(args))
		}
		if got, ok := args[0].(types.AddressArgument); !ok || types.AccountAddress(got) != addr {
			t.Errorf("%s: argument 0 is %s, want address", test.name, args[0])
		}
		prefixArg, ok := args[1].(types.BytesArgument)
		if !ok || !bytes.Equal(prefixArg, test.authKeyPrefix) {
			t.Errorf("%s: argument 1 is %s, want prefix bytes", test.name, args[1])
		}
		if got, ok := args[2].(types.U64Argument); !ok || got != 100 {
			t.Errorf("%s: argument 2 is %s, want {U64: 100}", test.name, args[2])
		}
	}
}

func TestEncodeMintLBRToAddressScriptBadPrefix(t *testing.T) {
	addr := testAddress(0x77)
	for _, length := range []int{1, types.AuthKeyPrefixLength - 1, types.AuthKeyPrefixLength + 1} {
		prefix := make([]byte, length)
		assertPanics(t, spew.Sprintf("EncodeMintLBRToAddressScript with %d-byte prefix", length),
			func() {
				EncodeMintLBRToAddressScript(addr, prefix, 100)
			})
	}
}

func TestEncodeMintScriptValidatesPrefix(t *testing.T) {
	addr := testAddress(0x11)
	currency := types.LBRTypeTag()

	script := EncodeMintScript(currency, addr, nil, 7)
	if len(script.TypeArguments()) != 1 {
		t.Errorf("EncodeMintScript: got %d type arguments, want 1",
			len(script.TypeArguments()))
	}

	assertPanics(t, "EncodeMintScript with 1-byte prefix", func() {
		EncodeMintScript(currency, addr, []byte{0x01}, 7)
	})
}

func TestEncodeCreateParentVASPAccountScript(t *testing.T) {
	script := EncodeCreateParentVASPAccountScript(
		types.CurrencyTypeTag("Coin"),
		testAddress(0x01),
		make([]byte, types.AuthKeyPrefixLength),
		[]byte("Example VASP"),
		[]byte("https://example.com"),
		[]byte{0xcc},
		true,
	)
	if len(script.TypeArguments()) != 1 {
		t.Fatalf("got %d type arguments, want 1", len(script.TypeArguments()))
	}

	wantKinds := []argKind{argAddress, argBytes, argBytes, argBytes, argBytes, argBool}
	args := script.Arguments()
	if len(args) != len(wantKinds) {
		t.Fatalf("got %d arguments, want %d", len(args), len(wantKinds))
	}
	for i, arg := range args {
		if kindOf(arg) != wantKinds[i] {
			t.Errorf("argument %d is %s, want %s", i, kindOf(arg), wantKinds[i])
		}
	}
}

// TestEncodersMatchDeclaredSchemas drives every typed encoder once and
// checks the result against the script's declared schema: registry
// bytecode, type-argument arity, and argument kinds in order.
func TestEncodersMatchDeclaredSchemas(t *testing.T) {
	currency := types.LBRTypeTag()
	addr := testAddress(0xab)
	keyPrefix := make([]byte, types.AuthKeyPrefixLength)
	blob := []byte{0xbb, 0xcc}

	scripts := map[stdscript.ScriptID]*types.Script{
		stdscript.AddCurrencyToAccount: EncodeAddCurrencyToAccountScript(currency),
		stdscript.AddValidator:         EncodeAddValidatorScript(addr),
		stdscript.Burn:                 EncodeBurnScript(currency, 1, addr),
		stdscript.BurnTxnFees:          EncodeBurnTxnFeesScript(currency),
		stdscript.CancelBurn:           EncodeCancelBurnScript(currency, addr),
		stdscript.CreateChildVASPAccount: EncodeCreateChildVASPAccountScript(
			currency, addr, keyPrefix, false, 10),
		stdscript.CreateDesignatedDealer: EncodeCreateDesignatedDealerScript(
			currency, 2, addr, keyPrefix),
		stdscript.CreateParentVASPAccount: EncodeCreateParentVASPAccountScript(
			currency, addr, keyPrefix, blob, blob, blob, true),
		stdscript.FreezeAccount:    EncodeFreezeAccountScript(3, addr),
		stdscript.Mint:             EncodeMintScript(currency, addr, keyPrefix, 4),
		stdscript.MintLBR:          EncodeMintLBRScript(5),
		stdscript.MintLBRToAddress: EncodeMintLBRToAddressScript(addr, keyPrefix, 6),
		stdscript.ModifyPublishingOption: EncodeModifyPublishingOptionScript(
			onchainconfig.OpenPublishingOption()),
		stdscript.PeerToPeerWithMetadata: EncodeTransferWithMetadataScript(
			currency, addr, 7, blob, blob),
		stdscript.Preburn:                       EncodePreburnScript(currency, 8),
		stdscript.PublishSharedEd25519PublicKey: EncodePublishSharedEd25519PublicKeyScript(blob),
		stdscript.RegisterPreburner:             EncodeRegisterPreburnerScript(currency),
		stdscript.RegisterValidator: EncodeRegisterValidatorScript(
			blob, blob, blob, blob, blob),
		stdscript.RemoveValidator:                  EncodeRemoveValidatorScript(addr),
		stdscript.RotateAuthenticationKey:          EncodeRotateAuthenticationKeyScript(blob),
		stdscript.RotateAuthenticationKeyWithNonce: EncodeRotateAuthenticationKeyWithNonceScript(9, blob),
		stdscript.RotateBaseURL:                    EncodeRotateBaseURLScript(blob),
		stdscript.RotateCompliancePublicKey:        EncodeRotateCompliancePublicKeyScript(blob),
		stdscript.RotateConsensusPubkey:            EncodeRotateConsensusPubkeyScript(blob),
		stdscript.RotateSharedEd25519PublicKey:     EncodeRotateSharedEd25519PublicKeyScript(blob),
		stdscript.TieredMint:                       EncodeTieredMintScript(currency, 10, addr, 11, 1),
		stdscript.UnfreezeAccount:                  EncodeUnfreezeAccountScript(12, addr),
		stdscript.UnmintLBR:                        EncodeUnmintLBRScript(13),
		stdscript.UpdateExchangeRate:               EncodeUpdateExchangeRateScript(currency, 1, 2),
		stdscript.UpdateMintingAbility:             EncodeUpdateMintingAbilityScript(currency, true),
		stdscript.UpdateChainVersion: EncodeUpdateChainVersionScript(
			onchainconfig.ChainVersion{Major: 14}),
	}

	if len(scripts) != len(scriptSchemas) {
		t.Fatalf("covered %d scripts, schema table declares %d",
			len(scripts), len(scriptSchemas))
	}

	for id, script := range scripts {
		schema := scriptSchemas[id]
		if !bytes.Equal(script.Code(), stdscript.Bytecode(id)) {
			t.Errorf("%s: bytecode differs from the registry blob", id)
		}
		if len(script.TypeArguments()) != schema.typeArgArity {
			t.Errorf("%s: got %d type arguments, want %d",
				id, len(script.TypeArguments()), schema.typeArgArity)
		}
		args := script.Arguments()
		if len(args) != len(schema.args) {
			t.Errorf("%s: got %d arguments, want %d\n%s",
				id, len(args), len(schema.args), spew.Sdump(args))
			continue
		}
		for i, arg := range args {
			if kindOf(arg) != schema.args[i] {
				t.Errorf("%s: argument %d is %s, want %s\n%s",
					id, i, kindOf(arg), schema.args[i], spew.Sdump(arg))
			}
		}
	}
}

func TestBytecodeIsArgumentIndependent(t *testing.T) {
	first := EncodeAddValidatorScript(testAddress(0x00))
	second := EncodeAddValidatorScript(testAddress(0xff))
	if !bytes.Equal(first.Code(), second.Code()) {
		t.Error("AddValidator bytecode varies with arguments")
	}
}

func TestEncodeScriptIsUnchecked(t *testing.T) {
	// The escape hatch performs no schema checking: an argument vector
	// the typed encoder would reject goes through untouched.
	script := EncodeScript(stdscript.AddValidator,
		[]types.TypeTag{types.LBRTypeTag()},
		[]types.TransactionArgument{types.U64Argument(1), types.BoolArgument(true)})

	if !bytes.Equal(script.Code(), stdscript.Bytecode(stdscript.AddValidator)) {
		t.Error("EncodeScript: bytecode differs from the registry blob")
	}
	if len(script.TypeArguments()) != 1 || len(script.Arguments()) != 2 {
		t.Error("EncodeScript: vectors were not passed through verbatim")
	}
}

func TestEncodeModifyPublishingOptionScript(t *testing.T) {
	option := onchainconfig.LockedPublishingOption([][]byte{{0x01}})
	script := EncodeModifyPublishingOptionScript(option)

	wantBytes, err := option.CanonicalBytes()
	if err != nil {
		t.Fatalf("CanonicalBytes: %+v", err)
	}
	args := script.Arguments()
	if len(args) != 1 {
		t.Fatalf("got %d arguments, want 1", len(args))
	}
	if got, ok := args[0].(types.BytesArgument); !ok || !bytes.Equal(got, wantBytes) {
		t.Errorf("argument 0 is %s, want the option's canonical bytes", args[0])
	}
}

func TestGetTransactionName(t *testing.T) {
	for _, id := range stdscript.All() {
		want := id.String() + "_transaction"
		if got := GetTransactionName(stdscript.Bytecode(id)); got != want {
			t.Errorf("GetTransactionName(%s): got %q, want %q", id, got, want)
		}
	}

	for _, code := range [][]byte{nil, {}, {0x01, 0x02, 0x03}} {
		if got := GetTransactionName(code); got != unknownTransactionName {
			t.Errorf("GetTransactionName(%x): got %q, want %q",
				code, got, unknownTransactionName)
		}
	}
}

func TestEncodeBlockPrologue(t *testing.T) {
	metadata := types.BlockMetadata{TimestampUSec: 123, Proposer: testAddress(0x09)}
	tx := EncodeBlockPrologue(metadata)

	wrapped, ok := tx.(types.BlockMetadataTransaction)
	if !ok {
		t.Fatalf("EncodeBlockPrologue: got %T, want BlockMetadataTransaction", tx)
	}
	if wrapped.Metadata.TimestampUSec != 123 {
		t.Error("EncodeBlockPrologue: metadata was not carried through")
	}
}
