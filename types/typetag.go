package types

import "fmt"

// TypeTag is a generic type parameter attached to a script invocation,
// most commonly the currency a currency-parameterized script operates
// on. The set of variants is closed; values are immutable once built.
type TypeTag interface {
	fmt.Stringer
	isTypeTag()
}

// StructTag identifies an on-chain struct type: the module that
// declares it, the struct name, and any type parameters it was
// instantiated with.
type StructTag struct {
	Address    AccountAddress
	Module     string
	Name       string
	TypeParams []TypeTag
}

func (StructTag) isTypeTag() {}

func (tag StructTag) String() string {
	return fmt.Sprintf("0x%s::%s::%s", tag.Address, tag.Module, tag.Name)
}

// CurrencyTypeTag returns the type tag for the registered currency with
// the given currency code. All currency modules live under the core
// code address and expose their coin type as `T`.
func CurrencyTypeTag(currencyCode string) TypeTag {
	return StructTag{
		Address: CoreCodeAddress,
		Module:  currencyCode,
		Name:    "T",
	}
}

// LBRTypeTag returns the type tag for the native LBR currency.
func LBRTypeTag() TypeTag {
	return CurrencyTypeTag("LBR")
}
