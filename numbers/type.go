package numbers

import (
	"fmt"
	"math/big"

	"github.com/Lantah/go-lantah-base/xdr"
)

// Width is the number of bits in a fixed width integer.
type Width uint16

// Supported widths.
const (
	W64  Width = 64
	W128 Width = 128
	W256 Width = 256
)

// Words returns the number of 64 bit words needed to hold the width.
func (w Width) Words() int {
	return int(w) / 64
}

func (w Width) String() string {
	return fmt.Sprintf("%d bits", uint16(w))
}

// Signedness of a Type.
type Signedness uint8

// Signedness values.
const (
	Unsigned Signedness = iota
	Signed
)

// Type is one of the six integer types understood by the wire format.
type Type struct {
	Width Width
	Sign  Signedness
	Name  string
	ScVal xdr.ScValType
}

// Types
var (
	Invalid = Type{}
	U64     = Type{W64, Unsigned, "u64", xdr.ScvU64}
	I64     = Type{W64, Signed, "i64", xdr.ScvI64}
	U128    = Type{W128, Unsigned, "u128", xdr.ScvU128}
	I128    = Type{W128, Signed, "i128", xdr.ScvI128}
	U256    = Type{W256, Unsigned, "u256", xdr.ScvU256}
	I256    = Type{W256, Signed, "i256", xdr.ScvI256}

	// Types is every valid Type in ascending order of capacity.
	Types = types{
		U64,
		I64,
		U128,
		I128,
		U256,
		I256,
	}
)

type types []Type

// Match returns the Type with the given name.
func (ts types) Match(name string) (t Type, ok bool) {
	for _, t := range ts {
		if t.Name == name {
			return t, true
		}
	}

	return Invalid, false
}

// MatchScVal returns the Type carried by the given ScVal variant.
func (ts types) MatchScVal(st xdr.ScValType) (t Type, ok bool) {
	for _, t := range ts {
		if t.ScVal == st {
			return t, true
		}
	}

	return Invalid, false
}

// ParseType returns the Type with the given name (e.g. "u128").
func ParseType(name string) (Type, error) {
	t, ok := Types.Match(name)
	if !ok {
		return Invalid, InvalidTypeError.New("invalid type: %q", name)
	}

	return t, nil
}

// Valid returns true if t is one of the six supported types.
func (t Type) Valid() bool {
	for _, tt := range Types {
		if t == tt {
			return true
		}
	}

	return false
}

// Signed returns true for i64, i128 and i256.
func (t Type) Signed() bool {
	return t.Sign == Signed
}

// Bits returns the width of t in bits.
func (t Type) Bits() int {
	return int(t.Width)
}

func (t Type) String() string {
	if t.Name == "" {
		return "invalid"
	}

	return t.Name
}

// Min returns the smallest value representable by t.
func (t Type) Min() *big.Int {
	if !t.Signed() {
		return new(big.Int)
	}

	return new(big.Int).Neg(pow2(t.Bits() - 1))
}

// Max returns the largest value representable by t.
func (t Type) Max() *big.Int {
	bits := t.Bits()
	if t.Signed() {
		bits--
	}

	m := pow2(bits)

	return m.Sub(m, big1)
}

// Contains returns true if v is within the range of t.
func (t Type) Contains(v *big.Int) bool {
	if !t.Valid() || v == nil {
		return false
	}

	return v.Cmp(t.Min()) >= 0 && v.Cmp(t.Max()) <= 0
}
