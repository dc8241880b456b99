package xdr

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
)

// MaxOpaqueSize bounds the length of variable sized arms accepted by the
// decoder.
const MaxOpaqueSize = 1 << 20

// Decoder reads ScVals in XDR form.
type Decoder interface {
	Decode(v *ScVal) (err error)
	Consumed() uint64
}

type decoder struct {
	r io.Reader

	consumed uint64

	buf [8]byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		return Error.New("short read: want=%d got=%d: %v", len(p), n, err)
	}

	return nil
}

func (d *decoder) uint32() (_ uint32, err error) {
	err = d.read(d.buf[:4])
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(d.buf[:4]), nil
}

func (d *decoder) uint64() (_ Uint64, err error) {
	err = d.read(d.buf[:8])
	if err != nil {
		return 0, err
	}

	return Uint64(binary.BigEndian.Uint64(d.buf[:8])), nil
}

func (d *decoder) words(ws ...*Uint64) (err error) {
	for _, w := range ws {
		*w, err = d.uint64()
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) opaque() (data []byte, err error) {
	size, err := d.uint32()
	if err != nil {
		return nil, err
	}

	if size > MaxOpaqueSize {
		return nil, Error.New("invalid: size=%d max=%d", size, MaxOpaqueSize)
	}

	data = make([]byte, size)

	err = d.read(data)
	if err != nil {
		return nil, err
	}

	if pad := (4 - size%4) % 4; pad > 0 {
		err = d.read(d.buf[:pad])
		if err != nil {
			return nil, err
		}

		for _, b := range d.buf[:pad] {
			if b != 0 {
				return nil, Error.New("non-zero padding: %08b", b)
			}
		}
	}

	return data, nil
}

// Consumed returns the number of bytes read so far.
func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Decode reads the next ScVal into v. Any previous contents of v are
// discarded.
func (d *decoder) Decode(v *ScVal) (err error) {
	if v == nil {
		return oops.Trace(ErrInvalidOperation)
	}

	defer Error.WrapP(&err)

	disc, err := d.uint32()
	if err != nil {
		return err
	}

	t := ScValType(int32(disc))

	switch t {
	case ScvBool:
		b, err := d.uint32()
		if err != nil {
			return err
		}

		switch b {
		case 0:
			*v = NewScvBool(false)
		case 1:
			*v = NewScvBool(true)
		default:
			return Error.New("invalid bool: %d", b)
		}
	case ScvVoid:
		*v = NewScvVoid()
	case ScvU32:
		u, err := d.uint32()
		if err != nil {
			return err
		}

		*v = NewScvU32(Uint32(u))
	case ScvI32:
		u, err := d.uint32()
		if err != nil {
			return err
		}

		*v = NewScvI32(Int32(int32(u)))
	case ScvU64:
		u, err := d.uint64()
		if err != nil {
			return err
		}

		*v = NewScvU64(u)
	case ScvI64:
		u, err := d.uint64()
		if err != nil {
			return err
		}

		*v = NewScvI64(Int64(int64(u)))
	case ScvTimepoint:
		u, err := d.uint64()
		if err != nil {
			return err
		}

		*v = NewScvTimepoint(u)
	case ScvDuration:
		u, err := d.uint64()
		if err != nil {
			return err
		}

		*v = NewScvDuration(u)
	case ScvU128:
		p := UInt128Parts{}

		err = d.words(&p.Hi, &p.Lo)
		if err != nil {
			return err
		}

		*v = NewScvU128(p)
	case ScvI128:
		p := Int128Parts{}

		err = d.words(&p.Hi, &p.Lo)
		if err != nil {
			return err
		}

		*v = NewScvI128(p)
	case ScvU256:
		p := UInt256Parts{}

		err = d.words(&p.HiHi, &p.HiLo, &p.LoHi, &p.LoLo)
		if err != nil {
			return err
		}

		*v = NewScvU256(p)
	case ScvI256:
		p := Int256Parts{}

		err = d.words(&p.HiHi, &p.HiLo, &p.LoHi, &p.LoLo)
		if err != nil {
			return err
		}

		*v = NewScvI256(p)
	case ScvBytes:
		data, err := d.opaque()
		if err != nil {
			return err
		}

		*v = NewScvBytes(data)
	case ScvString:
		data, err := d.opaque()
		if err != nil {
			return err
		}

		*v = NewScvString(string(data))
	case ScvSymbol:
		data, err := d.opaque()
		if err != nil {
			return err
		}

		*v = NewScvSymbol(string(data))
	default:
		return Error.New("unsupported type: %s", t)
	}

	return nil
}
