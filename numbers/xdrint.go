package numbers

import (
	"encoding/json"
	"math/big"

	"github.com/Lantah/go-lantah-base/xdr"
)

// maxSafeInteger is the largest integer n such that n and n+1 are both
// exactly representable as float64 (2^53 - 1).
var maxSafeInteger = new(big.Int).Sub(pow2(53), big1)

// XdrInt is a fixed width integer that converts to the ScVal integer
// variants.
type XdrInt struct {
	int *Fixed
}

// NewXdrInt builds an XdrInt of type t from one value or from 64 bit words
// (least significant first). See NewFixed.
func NewXdrInt(t Type, values ...interface{}) (*XdrInt, error) {
	f, err := NewFixed(t, values...)
	if err != nil {
		return nil, err
	}

	return &XdrInt{int: f}, nil
}

// NewXdrIntNamed is NewXdrInt with the type given by name (e.g. "i128").
func NewXdrIntNamed(name string, values ...interface{}) (*XdrInt, error) {
	t, err := ParseType(name)
	if err != nil {
		return nil, err
	}

	return NewXdrInt(t, values...)
}

// Type returns the declared type.
func (x *XdrInt) Type() Type {
	return x.int.Type()
}

// ToNumber returns the value as an int64 if it is within ±(2^53 - 1), the
// range where it is also exact as a float64.
func (x *XdrInt) ToNumber() (int64, error) {
	v := x.int.v
	if v.CmpAbs(maxSafeInteger) > 0 {
		return 0, RangeError.New(
			"value %s too large for Number [%s, %s]",
			v, new(big.Int).Neg(maxSafeInteger), maxSafeInteger,
		)
	}

	return v.Int64(), nil
}

// ToBigInt returns a copy of the value.
func (x *XdrInt) ToBigInt() *big.Int {
	return x.int.BigInt()
}

// ToI64 returns the value as a scvI64. The declared type must be 64 bits
// wide and the value must fit in an int64 (a u64 above 2^63 - 1 does not).
func (x *XdrInt) ToI64() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W64)
	if err != nil {
		return scv, err
	}

	if !I64.Contains(x.int.v) {
		return scv, RangeError.New("value too large for i64: %s", x.int.v)
	}

	return toScVal(I64, x.int.v), nil
}

// ToU64 returns the value reinterpreted as unsigned 64 bits as a scvU64.
func (x *XdrInt) ToU64() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W64)
	if err != nil {
		return scv, err
	}

	return toScVal(U64, x.int.v), nil
}

// ToI128 returns the value as a scvI128.
func (x *XdrInt) ToI128() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W128)
	if err != nil {
		return scv, err
	}

	return toScVal(I128, x.int.v), nil
}

// ToU128 returns the value as a scvU128.
func (x *XdrInt) ToU128() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W128)
	if err != nil {
		return scv, err
	}

	return toScVal(U128, x.int.v), nil
}

// ToI256 returns the value as a scvI256.
func (x *XdrInt) ToI256() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W256)
	if err != nil {
		return scv, err
	}

	return toScVal(I256, x.int.v), nil
}

// ToU256 returns the value as a scvU256.
func (x *XdrInt) ToU256() (scv xdr.ScVal, err error) {
	err = x.sizeCheck(W256)
	if err != nil {
		return scv, err
	}

	return toScVal(U256, x.int.v), nil
}

// ToScVal returns the value as the ScVal variant of its declared type.
func (x *XdrInt) ToScVal() (xdr.ScVal, error) {
	switch x.Type() {
	case I64:
		return x.ToI64()
	case U64:
		return x.ToU64()
	case I128:
		return x.ToI128()
	case U128:
		return x.ToU128()
	case I256:
		return x.ToI256()
	case U256:
		return x.ToU256()
	}

	return xdr.ScVal{}, InvalidTypeError.New("invalid type: %q", x.Type().Name)
}

// ValueOf returns a copy of the value.
func (x *XdrInt) ValueOf() *big.Int {
	return x.int.ValueOf()
}

// String returns the value in base 10.
func (x *XdrInt) String() string {
	return x.int.String()
}

// MarshalJSON implements json.Marshaler.
func (x *XdrInt) MarshalJSON() ([]byte, error) {
	return x.int.MarshalJSON()
}

// ParseJSON builds an XdrInt from the form produced by MarshalJSON.
func ParseJSON(data []byte) (*XdrInt, error) {
	ji := jsonInt{}

	err := json.Unmarshal(data, &ji)
	if err != nil {
		return nil, TypeError.Wrap(err)
	}

	return NewXdrIntNamed(ji.Type, ji.Value)
}

// UnmarshalJSON implements json.Unmarshaler. It is meant for freshly declared
// zero values only; values handed out by the constructors are not changed in
// place by anything else.
func (x *XdrInt) UnmarshalJSON(data []byte) error {
	if x == nil {
		return TypeError.New("unmarshal into nil XdrInt")
	}

	y, err := ParseJSON(data)
	if err != nil {
		return err
	}

	*x = *y

	return nil
}

// sizeCheck refuses conversions to a width narrower than the declared one,
// whatever the value.
func (x *XdrInt) sizeCheck(w Width) error {
	if x.int.t.Width > w {
		return RangeError.New("value too large for %d bits (%s)", uint16(w), x.int.t)
	}

	return nil
}
