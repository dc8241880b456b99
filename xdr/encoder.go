package xdr

import (
	"encoding/binary"
	"io"
	"math"
)

// Encoder writes ScVals in XDR form.
type Encoder interface {
	Encode(v ScVal) (err error)
}

type encoder struct {
	w   io.Writer
	buf [8]byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) uint32(v uint32) (err error) {
	binary.BigEndian.PutUint32(e.buf[:4], v)

	_, err = e.w.Write(e.buf[:4])

	return err
}

func (e *encoder) uint64(v uint64) (err error) {
	binary.BigEndian.PutUint64(e.buf[:8], v)

	_, err = e.w.Write(e.buf[:8])

	return err
}

func (e *encoder) words(ws ...Uint64) (err error) {
	for _, w := range ws {
		err = e.uint64(uint64(w))
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) opaque(data []byte) (err error) {
	if uint64(len(data)) > math.MaxUint32 {
		return Error.New("invalid: size=%d", len(data))
	}

	err = e.uint32(uint32(len(data)))
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return err
	}

	if pad := (4 - len(data)%4) % 4; pad > 0 {
		_, err = e.w.Write(make([]byte, pad))
		if err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the discriminant of v followed by its arm.
func (e *encoder) Encode(v ScVal) (err error) {
	defer Error.WrapP(&err)

	missing := func() error {
		return Error.New("missing arm for %s", v.Type)
	}

	switch v.Type {
	case ScvBool:
		if v.B == nil {
			return missing()
		}
	case ScvVoid:
	case ScvU32:
		if v.U32 == nil {
			return missing()
		}
	case ScvI32:
		if v.I32 == nil {
			return missing()
		}
	case ScvU64:
		if v.U64 == nil {
			return missing()
		}
	case ScvI64:
		if v.I64 == nil {
			return missing()
		}
	case ScvTimepoint:
		if v.Timepoint == nil {
			return missing()
		}
	case ScvDuration:
		if v.Duration == nil {
			return missing()
		}
	case ScvU128:
		if v.U128 == nil {
			return missing()
		}
	case ScvI128:
		if v.I128 == nil {
			return missing()
		}
	case ScvU256:
		if v.U256 == nil {
			return missing()
		}
	case ScvI256:
		if v.I256 == nil {
			return missing()
		}
	case ScvBytes:
		if v.Bytes == nil {
			return missing()
		}
	case ScvString:
		if v.Str == nil {
			return missing()
		}
	case ScvSymbol:
		if v.Sym == nil {
			return missing()
		}
	default:
		return Error.New("unsupported type: %s", v.Type)
	}

	err = e.uint32(uint32(v.Type))
	if err != nil {
		return err
	}

	switch v.Type {
	case ScvBool:
		if *v.B {
			return e.uint32(1)
		}

		return e.uint32(0)
	case ScvVoid:
		return nil
	case ScvU32:
		return e.uint32(uint32(*v.U32))
	case ScvI32:
		return e.uint32(uint32(*v.I32))
	case ScvU64:
		return e.uint64(uint64(*v.U64))
	case ScvI64:
		return e.uint64(uint64(*v.I64))
	case ScvTimepoint:
		return e.uint64(uint64(*v.Timepoint))
	case ScvDuration:
		return e.uint64(uint64(*v.Duration))
	case ScvU128:
		return e.words(v.U128.Hi, v.U128.Lo)
	case ScvI128:
		return e.words(v.I128.Hi, v.I128.Lo)
	case ScvU256:
		return e.words(v.U256.HiHi, v.U256.HiLo, v.U256.LoHi, v.U256.LoLo)
	case ScvI256:
		return e.words(v.I256.HiHi, v.I256.HiLo, v.I256.LoHi, v.I256.LoLo)
	case ScvBytes:
		return e.opaque(*v.Bytes)
	case ScvString:
		return e.opaque([]byte(*v.Str))
	case ScvSymbol:
		return e.opaque([]byte(*v.Sym))
	}

	return nil
}
