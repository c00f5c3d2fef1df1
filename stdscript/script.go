// Package stdscript is the registry of the standard library's
// transaction scripts. It maps each script's symbolic identifier to
// its pre-compiled bytecode and back. The set of scripts is closed and
// compiled in; the registry is read-only and safe for concurrent use.
package stdscript

import (
	"fmt"

	"github.com/pkg/errors"
)

// ScriptID identifies one known transaction script.
type ScriptID uint32

// The known transaction scripts.
const (
	AddCurrencyToAccount ScriptID = iota
	AddValidator
	Burn
	BurnTxnFees
	CancelBurn
	CreateChildVASPAccount
	CreateDesignatedDealer
	CreateParentVASPAccount
	FreezeAccount
	Mint
	MintLBR
	MintLBRToAddress
	ModifyPublishingOption
	PeerToPeerWithMetadata
	Preburn
	PublishSharedEd25519PublicKey
	RegisterPreburner
	RegisterValidator
	RemoveValidator
	RotateAuthenticationKey
	RotateAuthenticationKeyWithNonce
	RotateBaseURL
	RotateCompliancePublicKey
	RotateConsensusPubkey
	RotateSharedEd25519PublicKey
	TieredMint
	UnfreezeAccount
	UnmintLBR
	UpdateExchangeRate
	UpdateMintingAbility
	UpdateChainVersion
)

// scriptIDToName maps every ScriptID to its display name.
var scriptIDToName = map[ScriptID]string{
	AddCurrencyToAccount:             "add_currency_to_account",
	AddValidator:                     "add_validator",
	Burn:                             "burn",
	BurnTxnFees:                      "burn_txn_fees",
	CancelBurn:                       "cancel_burn",
	CreateChildVASPAccount:           "create_child_vasp_account",
	CreateDesignatedDealer:           "create_designated_dealer",
	CreateParentVASPAccount:          "create_parent_vasp_account",
	FreezeAccount:                    "freeze_account",
	Mint:                             "mint",
	MintLBR:                          "mint_lbr",
	MintLBRToAddress:                 "mint_lbr_to_address",
	ModifyPublishingOption:           "modify_publishing_option",
	PeerToPeerWithMetadata:           "peer_to_peer_with_metadata",
	Preburn:                          "preburn",
	PublishSharedEd25519PublicKey:    "publish_shared_ed25519_public_key",
	RegisterPreburner:                "register_preburner",
	RegisterValidator:                "register_validator",
	RemoveValidator:                  "remove_validator",
	RotateAuthenticationKey:          "rotate_authentication_key",
	RotateAuthenticationKeyWithNonce: "rotate_authentication_key_with_nonce",
	RotateBaseURL:                    "rotate_base_url",
	RotateCompliancePublicKey:        "rotate_compliance_public_key",
	RotateConsensusPubkey:            "rotate_consensus_pubkey",
	RotateSharedEd25519PublicKey:     "rotate_shared_ed25519_public_key",
	TieredMint:                       "tiered_mint",
	UnfreezeAccount:                  "unfreeze_account",
	UnmintLBR:                        "unmint_lbr",
	UpdateExchangeRate:               "update_exchange_rate",
	UpdateMintingAbility:             "update_minting_ability",
	UpdateChainVersion:               "update_chain_version",
}

// bytecodeToScriptID is the reverse lookup from a compiled blob back to
// its ScriptID, keyed by the raw blob bytes.
var bytecodeToScriptID = func() map[string]ScriptID {
	reverse := make(map[string]ScriptID, len(compiledBytecode))
	for id, code := range compiledBytecode {
		reverse[string(code)] = id
	}
	if len(reverse) != len(compiledBytecode) {
		panic(errors.New("duplicate bytecode blobs in the script registry"))
	}
	return reverse
}()

func (id ScriptID) String() string {
	name, ok := scriptIDToName[id]
	if !ok {
		return fmt.Sprintf("unknown script [id %d]", uint32(id))
	}
	return name
}

// Bytecode returns the compiled bytecode for the given script. The
// returned slice is a fresh copy, identical across all invocations.
// The script set is a closed enumeration, so an unknown id is a defect
// and panics.
func Bytecode(id ScriptID) []byte {
	code, ok := compiledBytecode[id]
	if !ok {
		panic(errors.Errorf("no compiled bytecode for script id %d", uint32(id)))
	}
	codeCopy := make([]byte, len(code))
	copy(codeCopy, code)
	return codeCopy
}

// FromBytecode performs the reverse lookup from a compiled blob back to
// its ScriptID. The second return value reports whether the blob is a
// registered script.
func FromBytecode(code []byte) (ScriptID, bool) {
	id, ok := bytecodeToScriptID[string(code)]
	return id, ok
}

// All returns every registered ScriptID in enumeration order.
func All() []ScriptID {
	all := make([]ScriptID, 0, len(scriptIDToName))
	for id := AddCurrencyToAccount; id <= UpdateChainVersion; id++ {
		all = append(all, id)
	}
	return all
}
