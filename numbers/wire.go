package numbers

import (
	"math/big"

	"github.com/Lantah/go-lantah-base/xdr"
)

// toScVal slices v into the words of target and wraps them in the matching
// ScVal variant. Callers check ranges first.
func toScVal(target Type, v *big.Int) xdr.ScVal {
	ws := toWords(v)

	switch target {
	case I64:
		return xdr.NewScvI64(xdr.Int64(int64(ws[0])))
	case U64:
		return xdr.NewScvU64(xdr.Uint64(ws[0]))
	case I128:
		return xdr.NewScvI128(xdr.Int128Parts{
			Hi: xdr.Uint64(ws[1]),
			Lo: xdr.Uint64(ws[0]),
		})
	case U128:
		return xdr.NewScvU128(xdr.UInt128Parts{
			Hi: xdr.Uint64(ws[1]),
			Lo: xdr.Uint64(ws[0]),
		})
	case I256:
		return xdr.NewScvI256(xdr.Int256Parts{
			HiHi: xdr.Uint64(ws[3]),
			HiLo: xdr.Uint64(ws[2]),
			LoHi: xdr.Uint64(ws[1]),
			LoLo: xdr.Uint64(ws[0]),
		})
	case U256:
		return xdr.NewScvU256(xdr.UInt256Parts{
			HiHi: xdr.Uint64(ws[3]),
			HiLo: xdr.Uint64(ws[2]),
			LoHi: xdr.Uint64(ws[1]),
			LoLo: xdr.Uint64(ws[0]),
		})
	}

	panic("numbers: unreachable type " + target.String())
}

// FromScVal returns the integer carried by an integer ScVal variant (32, 64,
// 128 or 256 bits, signed or unsigned).
func FromScVal(scv xdr.ScVal) (*big.Int, error) {
	missing := func() error {
		return TypeError.New("missing arm for %s", scv.Type)
	}

	switch scv.Type {
	case xdr.ScvU32:
		u, ok := scv.GetU32()
		if !ok {
			return nil, missing()
		}

		return new(big.Int).SetUint64(uint64(u)), nil
	case xdr.ScvI32:
		i, ok := scv.GetI32()
		if !ok {
			return nil, missing()
		}

		return big.NewInt(int64(i)), nil
	case xdr.ScvU64:
		u, ok := scv.GetU64()
		if !ok {
			return nil, missing()
		}

		return fromWords(false, uint64(u)), nil
	case xdr.ScvI64:
		i, ok := scv.GetI64()
		if !ok {
			return nil, missing()
		}

		return big.NewInt(int64(i)), nil
	case xdr.ScvU128:
		p, ok := scv.GetU128()
		if !ok {
			return nil, missing()
		}

		return fromWords(false, p.Words()...), nil
	case xdr.ScvI128:
		p, ok := scv.GetI128()
		if !ok {
			return nil, missing()
		}

		return fromWords(true, p.Words()...), nil
	case xdr.ScvU256:
		p, ok := scv.GetU256()
		if !ok {
			return nil, missing()
		}

		return fromWords(false, p.Words()...), nil
	case xdr.ScvI256:
		p, ok := scv.GetI256()
		if !ok {
			return nil, missing()
		}

		return fromWords(true, p.Words()...), nil
	}

	return nil, TypeError.New("expected integer type, got %s", scv.Type)
}

// NewXdrIntFromScVal decodes an integer ScVal keeping the type of its variant.
// The 32 bit variants widen to i64 and u64.
func NewXdrIntFromScVal(scv xdr.ScVal) (*XdrInt, error) {
	v, err := FromScVal(scv)
	if err != nil {
		return nil, err
	}

	var t Type
	switch scv.Type {
	case xdr.ScvU32:
		t = U64
	case xdr.ScvI32:
		t = I64
	default:
		t, _ = Types.MatchScVal(scv.Type)
	}

	return NewXdrInt(t, v)
}
