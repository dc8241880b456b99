package numbers

import (
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/Lantah/go-lantah-base/xdr"
)

// ToCanonical normalizes an integer-like input into a new big.Int.
//
// Accepted inputs are the Go machine integers, integral float32/float64
// values, strings (decimal, or with a 0x/0o/0b prefix), *big.Int, big.Int,
// *uint256.Int, the xdr word types, and *Fixed, *XdrInt and *ScInt.
func ToCanonical(input interface{}) (*big.Int, error) {
	switch v := input.(type) {
	case *big.Int:
		if v == nil {
			return nil, TypeError.New("nil *big.Int")
		}

		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return fromString(v)
	case *uint256.Int:
		if v == nil {
			return nil, TypeError.New("nil *uint256.Int")
		}

		return v.ToBig(), nil
	case xdr.Uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case xdr.Int32:
		return big.NewInt(int64(v)), nil
	case xdr.Uint64:
		return new(big.Int).SetUint64(uint64(v)), nil
	case xdr.Int64:
		return big.NewInt(int64(v)), nil
	case *Fixed:
		if v == nil {
			return nil, TypeError.New("nil *Fixed")
		}

		return v.BigInt(), nil
	case *XdrInt:
		if v == nil {
			return nil, TypeError.New("nil *XdrInt")
		}

		return v.ToBigInt(), nil
	case *ScInt:
		if v == nil || v.XdrInt == nil {
			return nil, TypeError.New("nil *ScInt")
		}

		return v.ToBigInt(), nil
	}

	return nil, TypeError.New("unsupported input: %T", input)
}

func fromFloat(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, RangeError.New("not an integer: %v", f)
	}

	v, _ := big.NewFloat(f).Int(nil)

	return v, nil
}

func fromString(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")

	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok || strings.Contains(s, "_") {
		return nil, TypeError.New("not an integer: %q", s)
	}

	return v, nil
}
