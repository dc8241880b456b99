package numbers

import (
	"encoding/json"
	"math/big"

	"github.com/Lantah/go-lantah-base/log"
)

// ScInt is an XdrInt whose type is picked from the value unless given
// explicitly.
type ScInt struct {
	*XdrInt
}

type scIntOptions struct {
	t   Type
	err error
}

// Option configures NewScInt.
type Option func(*scIntOptions)

// WithType requests an explicit type instead of inference.
func WithType(t Type) Option {
	return func(o *scIntOptions) {
		if !t.Valid() {
			o.err = InvalidTypeError.New("invalid type: %q", t.Name)
			return
		}

		o.t = t
	}
}

// WithTypeName is WithType with the type given by name (e.g. "u64").
func WithTypeName(name string) Option {
	return func(o *scIntOptions) {
		t, err := ParseType(name)
		if err != nil {
			o.err = err
			return
		}

		o.t = t
	}
}

// NewScInt builds an ScInt from any input accepted by ToCanonical.
//
// Without WithType the smallest type holding the value is used: u64, u128 or
// u256 for values >= 0 and i64, i128 or i256 for negative values. With
// WithType a negative value for an unsigned type fails before the range is
// checked.
func NewScInt(value interface{}, opts ...Option) (*ScInt, error) {
	o := scIntOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.err != nil {
		return nil, o.err
	}

	v, err := ToCanonical(value)
	if err != nil {
		return nil, err
	}

	t := o.t
	if t == Invalid {
		t, err = Infer(v)
		if err != nil {
			return nil, err
		}

		log.Trace("inferred integer type", "value", v.String(), "type", t.Name)
	} else if !t.Signed() && v.Sign() < 0 {
		return nil, RangeError.New("specified type %s yet negative (%s)", t, v)
	}

	x, err := NewXdrInt(t, v)
	if err != nil {
		return nil, err
	}

	return &ScInt{XdrInt: x}, nil
}

// Infer returns the smallest type whose range contains v.
func Infer(v *big.Int) (Type, error) {
	candidates := []Type{U64, U128, U256}
	if v.Sign() < 0 {
		candidates = []Type{I64, I128, I256}
	}

	for _, t := range candidates {
		if t.Contains(v) {
			return t, nil
		}
	}

	return Invalid, RangeError.New("expected a value that fits in 256 bits, got %s (%d bits)", v, v.BitLen())
}

// UnmarshalJSON implements json.Unmarshaler for the form produced by
// MarshalJSON. A missing type is inferred from the value.
func (s *ScInt) UnmarshalJSON(data []byte) error {
	ji := jsonInt{}

	err := json.Unmarshal(data, &ji)
	if err != nil {
		return TypeError.Wrap(err)
	}

	opts := []Option{}
	if ji.Type != "" {
		opts = append(opts, WithTypeName(ji.Type))
	}

	y, err := NewScInt(ji.Value, opts...)
	if err != nil {
		return err
	}

	s.XdrInt = y.XdrInt

	return nil
}
