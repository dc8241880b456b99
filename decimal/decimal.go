package decimal

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Lantah/go-lantah-base/numbers"
)

// Error is the class of errors produced by this package.
var Error = errs.Class("decimal")

// AmountScale is the number of fractional digits of a native amount.
const AmountScale = 7

var big10 = big.NewInt(10)

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value *big.Int
	Scale uint32
}

func pow10(scale uint32) *big.Int {
	return new(big.Int).Exp(big10, big.NewInt(int64(scale)), nil)
}

func digits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// Parse reads s as a decimal with at most scale fractional digits.
func Parse(s string, scale uint32) (b Block, err error) {
	defer Error.WrapP(&err)

	body := s
	negative := false
	switch {
	case strings.HasPrefix(body, "-"):
		negative = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	whole, frac := body, ""
	if i := strings.IndexByte(body, '.'); i >= 0 {
		whole, frac = body[:i], body[i+1:]
	}

	if (whole == "" && frac == "") || !digits(whole) || !digits(frac) {
		return b, Error.New("invalid decimal: %q", s)
	}

	if len(frac) > int(scale) {
		return b, Error.New("too many digits after the decimal point: %q (scale %d)", s, scale)
	}

	v := new(big.Int)
	if whole != "" {
		v.SetString(whole, 10)
	}

	v.Mul(v, pow10(scale))

	if frac != "" {
		f, _ := new(big.Int).SetString(frac, 10)
		f.Mul(f, pow10(scale-uint32(len(frac))))
		v.Add(v, f)
	}

	if negative {
		v.Neg(v)
	}

	return Block{Value: v, Scale: scale}, nil
}

// FromXdrInt reads the value of x as an amount with the given scale.
func FromXdrInt(x *numbers.XdrInt, scale uint32) Block {
	return Block{Value: x.ToBigInt(), Scale: scale}
}

// XdrInt returns the unscaled value as an XdrInt of type t.
func (b Block) XdrInt(t numbers.Type) (*numbers.XdrInt, error) {
	if b.Value == nil {
		return nil, Error.New("nil value")
	}

	return numbers.NewXdrInt(t, b.Value)
}

// String returns the shortest exact base 10 form of b.
func (b Block) String() string {
	if b.Value == nil {
		return "<nil>"
	}

	return Format(b.Value, b.Scale)
}

// Format renders v * 10^-scale with trailing fractional zeros trimmed.
func Format(v *big.Int, scale uint32) string {
	q, r := new(big.Int).QuoRem(new(big.Int).Abs(v), pow10(scale), new(big.Int))

	sb := &strings.Builder{}
	if v.Sign() < 0 {
		sb.WriteString("-")
	}

	sb.WriteString(q.String())

	if r.Sign() != 0 {
		frac := r.String()
		frac = strings.Repeat("0", int(scale)-len(frac)) + frac
		frac = strings.TrimRight(frac, "0")

		sb.WriteString(".")
		sb.WriteString(frac)
	}

	return sb.String()
}

// ToXdrInt parses s with the given scale into an XdrInt of type t.
func ToXdrInt(s string, scale uint32, t numbers.Type) (*numbers.XdrInt, error) {
	b, err := Parse(s, scale)
	if err != nil {
		return nil, err
	}

	return b.XdrInt(t)
}

// Amount parses a native amount (scale 7) into an i64.
func Amount(s string) (*numbers.XdrInt, error) {
	return ToXdrInt(s, AmountScale, numbers.I64)
}

// FormatAmount renders an i64 native amount.
func FormatAmount(x *numbers.XdrInt) string {
	return FromXdrInt(x, AmountScale).String()
}
