// Package txbuilder converts named chain operations into the exact
// binary transaction payloads the bytecode interpreter executes: a
// fixed compiled blob from the stdscript registry plus an ordered,
// type-tagged argument vector. Every encoder is a pure function; the
// resulting Script is handed to an external signing and submission
// layer unmodified.
package txbuilder

import (
	"fmt"

	"github.com/calibranet/calibrad/onchainconfig"
	"github.com/calibranet/calibrad/stdscript"
	"github.com/calibranet/calibrad/types"
	"github.com/pkg/errors"
)

// unknownTransactionName is returned by GetTransactionName for byte
// sequences that are not a registered script.
const unknownTransactionName = "<unknown transaction>"

// EncodeScript assembles a script from raw type and argument vectors
// with no schema checking. It is the low-level escape hatch; the typed
// encoders below should be used whenever one exists, since they cannot
// produce a script the interpreter will reject for a malformed
// signature.
func EncodeScript(id stdscript.ScriptID, typeArgs []types.TypeTag,
	args []types.TransactionArgument) *types.Script {

	return types.NewScript(stdscript.Bytecode(id), typeArgs, args)
}

// EncodeAddValidatorScript encodes a script adding newValidator to the
// pending validator set. Fails on-chain if the address is already in
// the validator set, already pending, or has no validator config
// published.
func EncodeAddValidatorScript(newValidator types.AccountAddress) *types.Script {
	return encodeWithSchema(stdscript.AddValidator, nil,
		[]types.TransactionArgument{
			types.AddressArgument(newValidator),
		})
}

// EncodeRemoveValidatorScript encodes a script adding toRemove to the
// set of pending validator removals.
func EncodeRemoveValidatorScript(toRemove types.AccountAddress) *types.Script {
	return encodeWithSchema(stdscript.RemoveValidator, nil,
		[]types.TransactionArgument{
			types.AddressArgument(toRemove),
		})
}

// EncodeRegisterValidatorScript encodes a script registering the
// sender as a candidate validator with the given key and network
// address material. The consensus key is an ed25519 public key, the
// network identity keys are x25519 public keys.
func EncodeRegisterValidatorScript(consensusPubkey, validatorNetworkIdentityPubkey,
	validatorNetworkAddress, fullNodesNetworkIdentityPubkey,
	fullNodesNetworkAddress []byte) *types.Script {

	return encodeWithSchema(stdscript.RegisterValidator, nil,
		[]types.TransactionArgument{
			types.BytesArgument(consensusPubkey),
			types.BytesArgument(validatorNetworkIdentityPubkey),
			types.BytesArgument(validatorNetworkAddress),
			types.BytesArgument(fullNodesNetworkIdentityPubkey),
			types.BytesArgument(fullNodesNetworkAddress),
		})
}

// EncodeRotateConsensusPubkeyScript encodes a script rotating the
// sender's consensus public key to newKey.
func EncodeRotateConsensusPubkeyScript(newKey []byte) *types.Script {
	return encodeWithSchema(stdscript.RotateConsensusPubkey, nil,
		[]types.TransactionArgument{
			types.BytesArgument(newKey),
		})
}

// EncodePreburnScript encodes a script moving amount coins of the
// given currency from the sender's balance into its preburn area. The
// sender must already have a published preburn resource.
func EncodePreburnScript(currency types.TypeTag, amount uint64) *types.Script {
	return encodeWithSchema(stdscript.Preburn,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.U64Argument(amount),
		})
}

// EncodeRegisterPreburnerScript encodes a script publishing a new
// preburn resource under the sender's account.
func EncodeRegisterPreburnerScript(currency types.TypeTag) *types.Script {
	return encodeWithSchema(stdscript.RegisterPreburner,
		[]types.TypeTag{currency}, nil)
}

// EncodeBurnScript encodes a script permanently destroying the coins
// in the oldest burn request under the preburn resource at
// preburnAddress. The sender must hold the currency's mint capability.
func EncodeBurnScript(currency types.TypeTag, nonce uint64,
	preburnAddress types.AccountAddress) *types.Script {

	return encodeWithSchema(stdscript.Burn,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.AddressArgument(preburnAddress),
		})
}

// EncodeBurnTxnFeesScript encodes a script burning the transaction
// fees collected in the given currency. The currency must not be
// synthetic.
func EncodeBurnTxnFeesScript(currency types.TypeTag) *types.Script {
	return encodeWithSchema(stdscript.BurnTxnFees,
		[]types.TypeTag{currency}, nil)
}

// EncodeCancelBurnScript encodes a script cancelling the oldest burn
// request at preburnAddress and returning the funds there.
func EncodeCancelBurnScript(currency types.TypeTag,
	preburnAddress types.AccountAddress) *types.Script {

	return encodeWithSchema(stdscript.CancelBurn,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.AddressArgument(preburnAddress),
		})
}

// EncodeTransferWithMetadataScript encodes a script transferring
// amount coins of the given currency to recipientAddress with
// optional associated metadata and an optional signature over the
// metadata, amount and sender address. Metadata and signature are
// required by the dual-attestation rule for large transfers between
// distinct VASPs.
func EncodeTransferWithMetadataScript(currency types.TypeTag,
	recipientAddress types.AccountAddress, amount uint64,
	metadata, metadataSignature []byte) *types.Script {

	return encodeWithSchema(stdscript.PeerToPeerWithMetadata,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.AddressArgument(recipientAddress),
			types.U64Argument(amount),
			types.BytesArgument(metadata),
			types.BytesArgument(metadataSignature),
		})
}

// EncodeAddCurrencyToAccountScript encodes a script adding a zero
// balance of the given currency to the sending account. Aborts
// on-chain if the account already holds that currency.
func EncodeAddCurrencyToAccountScript(currency types.TypeTag) *types.Script {
	return encodeWithSchema(stdscript.AddCurrencyToAccount,
		[]types.TypeTag{currency}, nil)
}

// EncodePublishSharedEd25519PublicKeyScript encodes a script rotating
// the sender's authentication key to publicKey and publishing a shared
// public key resource holding publicKey and the sender's rotation
// capability.
func EncodePublishSharedEd25519PublicKeyScript(publicKey []byte) *types.Script {
	return encodeWithSchema(stdscript.PublishSharedEd25519PublicKey, nil,
		[]types.TransactionArgument{
			types.BytesArgument(publicKey),
		})
}

// EncodeRotateSharedEd25519PublicKeyScript encodes a script rotating
// both the key in the sender's shared public key resource and the
// sender's authentication key to values derived from newPublicKey.
func EncodeRotateSharedEd25519PublicKeyScript(newPublicKey []byte) *types.Script {
	return encodeWithSchema(stdscript.RotateSharedEd25519PublicKey, nil,
		[]types.TransactionArgument{
			types.BytesArgument(newPublicKey),
		})
}

// EncodeRotateAuthenticationKeyScript encodes a script rotating the
// sender's authentication key to newHashedKey, a 32-byte SHA3-256
// digest of an ed25519 public key.
func EncodeRotateAuthenticationKeyScript(newHashedKey []byte) *types.Script {
	return encodeWithSchema(stdscript.RotateAuthenticationKey, nil,
		[]types.TransactionArgument{
			types.BytesArgument(newHashedKey),
		})
}

// EncodeRotateAuthenticationKeyWithNonceScript is the sliding-nonce
// variant of EncodeRotateAuthenticationKeyScript.
func EncodeRotateAuthenticationKeyWithNonceScript(nonce uint64,
	newHashedKey []byte) *types.Script {

	return encodeWithSchema(stdscript.RotateAuthenticationKeyWithNonce, nil,
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.BytesArgument(newHashedKey),
		})
}

// EncodeRotateCompliancePublicKeyScript encodes a script rotating the
// sending VASP's compliance public key to newKey.
func EncodeRotateCompliancePublicKeyScript(newKey []byte) *types.Script {
	return encodeWithSchema(stdscript.RotateCompliancePublicKey, nil,
		[]types.TransactionArgument{
			types.BytesArgument(newKey),
		})
}

// EncodeRotateBaseURLScript encodes a script rotating the sending
// VASP's base URL to newURL.
func EncodeRotateBaseURLScript(newURL []byte) *types.Script {
	return encodeWithSchema(stdscript.RotateBaseURL, nil,
		[]types.TransactionArgument{
			types.BytesArgument(newURL),
		})
}

// EncodeMintScript encodes a script creating amount coins of the given
// currency for the account at receiver, creating the account with
// authKeyPrefix if it does not exist yet.
//
// TODO: remove once the integration harness mints through the
// designated-dealer flow instead.
func EncodeMintScript(currency types.TypeTag, receiver types.AccountAddress,
	authKeyPrefix []byte, amount uint64) *types.Script {

	validateAuthKeyPrefix(authKeyPrefix)
	return encodeWithSchema(stdscript.Mint,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.AddressArgument(receiver),
			types.BytesArgument(authKeyPrefix),
			types.U64Argument(amount),
		})
}

// EncodeMintLBRToAddressScript encodes a script creating amount LBR
// for the account at address, creating the account with authKeyPrefix
// if it does not exist yet.
func EncodeMintLBRToAddressScript(address types.AccountAddress,
	authKeyPrefix []byte, amount uint64) *types.Script {

	validateAuthKeyPrefix(authKeyPrefix)
	return encodeWithSchema(stdscript.MintLBRToAddress, nil,
		[]types.TransactionArgument{
			types.AddressArgument(address),
			types.BytesArgument(authKeyPrefix),
			types.U64Argument(amount),
		})
}

// EncodeMintLBRScript encodes a script minting amountLBR LBR from the
// sending account's constituent coins.
func EncodeMintLBRScript(amountLBR uint64) *types.Script {
	return encodeWithSchema(stdscript.MintLBR, nil,
		[]types.TransactionArgument{
			types.U64Argument(amountLBR),
		})
}

// EncodeUnmintLBRScript encodes a script unminting amountLBR LBR back
// into the constituent coins.
func EncodeUnmintLBRScript(amountLBR uint64) *types.Script {
	return encodeWithSchema(stdscript.UnmintLBR, nil,
		[]types.TransactionArgument{
			types.U64Argument(amountLBR),
		})
}

// EncodeUpdateExchangeRateScript encodes a script updating the
// on-chain LBR exchange rate of the given currency to
// newExchangeRateDenominator/newExchangeRateNumerator.
func EncodeUpdateExchangeRateScript(currency types.TypeTag,
	newExchangeRateDenominator, newExchangeRateNumerator uint64) *types.Script {

	return encodeWithSchema(stdscript.UpdateExchangeRate,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.U64Argument(newExchangeRateDenominator),
			types.U64Argument(newExchangeRateNumerator),
		})
}

// EncodeUpdateMintingAbilityScript encodes a script allowing or
// disallowing minting of the given currency.
func EncodeUpdateMintingAbilityScript(currency types.TypeTag,
	allowMinting bool) *types.Script {

	return encodeWithSchema(stdscript.UpdateMintingAbility,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.BoolArgument(allowMinting),
		})
}

// EncodeCreateParentVASPAccountScript encodes a script creating an
// account with the parent-VASP role at address, authentication key
// authKeyPrefix|address and a zero balance of the given currency. With
// addAllCurrencies, zero balances for every registered currency are
// added as well. Association-only.
func EncodeCreateParentVASPAccountScript(currency types.TypeTag,
	address types.AccountAddress, authKeyPrefix, humanName, baseURL,
	compliancePublicKey []byte, addAllCurrencies bool) *types.Script {

	return encodeWithSchema(stdscript.CreateParentVASPAccount,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.AddressArgument(address),
			types.BytesArgument(authKeyPrefix),
			types.BytesArgument(humanName),
			types.BytesArgument(baseURL),
			types.BytesArgument(compliancePublicKey),
			types.BoolArgument(addAllCurrencies),
		})
}

// EncodeCreateChildVASPAccountScript encodes a script creating an
// account with the child-VASP role at address, funded with
// initialBalance of the given currency from the sender. The sender
// must be a parent VASP.
func EncodeCreateChildVASPAccountScript(currency types.TypeTag,
	address types.AccountAddress, authKeyPrefix []byte,
	addAllCurrencies bool, initialBalance uint64) *types.Script {

	return encodeWithSchema(stdscript.CreateChildVASPAccount,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.AddressArgument(address),
			types.BytesArgument(authKeyPrefix),
			types.BoolArgument(addAllCurrencies),
			types.U64Argument(initialBalance),
		})
}

// EncodeCreateDesignatedDealerScript encodes a script creating a
// designated-dealer account at newAccountAddress.
func EncodeCreateDesignatedDealerScript(currency types.TypeTag, nonce uint64,
	newAccountAddress types.AccountAddress, authKeyPrefix []byte) *types.Script {

	return encodeWithSchema(stdscript.CreateDesignatedDealer,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.AddressArgument(newAccountAddress),
			types.BytesArgument(authKeyPrefix),
		})
}

// EncodeTieredMintScript encodes a script minting mintAmount to a
// designated dealer at the given tier. The sender must be the treasury
// compliance account.
func EncodeTieredMintScript(currency types.TypeTag, nonce uint64,
	designatedDealerAddress types.AccountAddress, mintAmount,
	tierIndex uint64) *types.Script {

	return encodeWithSchema(stdscript.TieredMint,
		[]types.TypeTag{currency},
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.AddressArgument(designatedDealerAddress),
			types.U64Argument(mintAmount),
			types.U64Argument(tierIndex),
		})
}

// EncodeFreezeAccountScript encodes a script freezing the account at
// address.
func EncodeFreezeAccountScript(nonce uint64, address types.AccountAddress) *types.Script {
	return encodeWithSchema(stdscript.FreezeAccount, nil,
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.AddressArgument(address),
		})
}

// EncodeUnfreezeAccountScript encodes a script unfreezing the account
// at address.
func EncodeUnfreezeAccountScript(nonce uint64, address types.AccountAddress) *types.Script {
	return encodeWithSchema(stdscript.UnfreezeAccount, nil,
		[]types.TransactionArgument{
			types.U64Argument(nonce),
			types.AddressArgument(address),
		})
}

// EncodeModifyPublishingOptionScript encodes a script replacing the
// chain's publishing option with the given configuration. The option
// travels as its canonical serialization; a value that cannot be
// serialized is a defect and panics.
func EncodeModifyPublishingOptionScript(option onchainconfig.PublishingOption) *types.Script {
	optionBytes, err := option.CanonicalBytes()
	if err != nil {
		panic(errors.Wrap(err, "couldn't serialize publishing option"))
	}
	return encodeWithSchema(stdscript.ModifyPublishingOption, nil,
		[]types.TransactionArgument{
			types.BytesArgument(optionBytes),
		})
}

// EncodeUpdateChainVersionScript encodes a script updating the
// on-chain protocol version.
func EncodeUpdateChainVersionScript(version onchainconfig.ChainVersion) *types.Script {
	return encodeWithSchema(stdscript.UpdateChainVersion, nil,
		[]types.TransactionArgument{
			types.U64Argument(version.Major),
		})
}

// EncodeBlockPrologue wraps consensus block metadata in its system
// transaction.
func EncodeBlockPrologue(metadata types.BlockMetadata) types.Transaction {
	return types.BlockMetadataTransaction{Metadata: metadata}
}

// GetTransactionName returns a human-readable mnemonic for a script
// payload if its bytecode is a registered script, and a fixed sentinel
// otherwise. This path is diagnostic only and deliberately never
// fails.
func GetTransactionName(code []byte) string {
	id, ok := stdscript.FromBytecode(code)
	if !ok {
		return unknownTransactionName
	}
	return fmt.Sprintf("%s_transaction", id)
}
