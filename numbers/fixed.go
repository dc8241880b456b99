package numbers

import (
	"encoding/json"
	"math/big"
)

// Fixed is an integer of one of the six fixed width Types. Its value is
// always within the range of its Type.
type Fixed struct {
	t Type
	v *big.Int
}

// NewFixed builds a Fixed of type t.
//
// A single value is used as is. Several values are read as 64 bit words, least
// significant first: every word but the last is taken modulo 2^64 and the last
// keeps its sign, so [lo, hi] is lo + hi<<64. For signed types the combined
// bits are then read as two's complement at the width of t, which lets the
// words of a negative value be passed as unsigned words.
func NewFixed(t Type, values ...interface{}) (*Fixed, error) {
	if !t.Valid() {
		return nil, InvalidTypeError.New("invalid type: %q", t.Name)
	}

	if len(values) == 0 {
		return nil, TypeError.New("no value given for %s", t)
	}

	if len(values) > t.Width.Words() {
		return nil, RangeError.New("%d words given for %s (at most %d)", len(values), t, t.Width.Words())
	}

	parts := make([]*big.Int, len(values))
	for i, value := range values {
		p, err := ToCanonical(value)
		if err != nil {
			return nil, err
		}

		parts[i] = p
	}

	v, err := combine(t, parts)
	if err != nil {
		return nil, err
	}

	if !t.Contains(v) {
		return nil, RangeError.New("value %s out of range for %s [%s, %s]", v, t, t.Min(), t.Max())
	}

	return &Fixed{t: t, v: v}, nil
}

// FromWords builds a Fixed of type t from exactly as many 64 bit words as t
// is wide, least significant first, reading them as t's two's complement
// form.
func FromWords(t Type, words ...uint64) (*Fixed, error) {
	if !t.Valid() {
		return nil, InvalidTypeError.New("invalid type: %q", t.Name)
	}

	if len(words) != t.Width.Words() {
		return nil, RangeError.New("%d words given for %s (want %d)", len(words), t, t.Width.Words())
	}

	return &Fixed{t: t, v: fromWords(t.Signed(), words...)}, nil
}

func combine(t Type, parts []*big.Int) (*big.Int, error) {
	if len(parts) == 1 {
		return parts[0], nil
	}

	for i, p := range parts {
		if p.Cmp(minWord) < 0 || p.Cmp(maxWord) > 0 {
			return nil, RangeError.New("word %d out of 64 bit range: %s", i, p)
		}
	}

	top := len(parts) - 1

	v := new(big.Int).Set(parts[top])
	for i := top - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Add(v, asUintN(64, parts[i]))
	}

	// Reinterpret the bit pattern if the sign bit of the declared width is
	// set.
	if t.Signed() && v.Sign() > 0 && v.Cmp(t.Max()) > 0 && v.BitLen() <= t.Bits() {
		v.Sub(v, pow2(t.Bits()))
	}

	return v, nil
}

// Type returns the declared type.
func (f *Fixed) Type() Type {
	return f.t
}

// Size returns the declared width in bits.
func (f *Fixed) Size() int {
	return f.t.Bits()
}

// BigInt returns a copy of the value.
func (f *Fixed) BigInt() *big.Int {
	return new(big.Int).Set(f.v)
}

// ValueOf returns a copy of the value for use with big.Int arithmetic and
// comparison.
func (f *Fixed) ValueOf() *big.Int {
	return f.BigInt()
}

// Cmp compares the values of f and o.
func (f *Fixed) Cmp(o *Fixed) int {
	return f.v.Cmp(o.v)
}

// Words returns the two's complement form of the value at its declared width
// as 64 bit words, least significant first.
func (f *Fixed) Words() []uint64 {
	ws := toWords(f.v)

	return append([]uint64(nil), ws[:f.t.Width.Words()]...)
}

// String returns the value in base 10.
func (f *Fixed) String() string {
	return f.v.String()
}

type jsonInt struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// MarshalJSON implements json.Marshaler as {"value": "<base 10>", "type": "<type>"}.
func (f *Fixed) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInt{
		Value: f.v.String(),
		Type:  f.t.Name,
	})
}
