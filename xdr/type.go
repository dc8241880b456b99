package xdr

import "fmt"

// ScValType is the discriminant of an ScVal.
type ScValType int32

// ScVal discriminants.
const (
	ScvBool      ScValType = 0
	ScvVoid      ScValType = 1
	ScvError     ScValType = 2
	ScvU32       ScValType = 3
	ScvI32       ScValType = 4
	ScvU64       ScValType = 5
	ScvI64       ScValType = 6
	ScvTimepoint ScValType = 7
	ScvDuration  ScValType = 8
	ScvU128      ScValType = 9
	ScvI128      ScValType = 10
	ScvU256      ScValType = 11
	ScvI256      ScValType = 12
	ScvBytes     ScValType = 13
	ScvString    ScValType = 14
	ScvSymbol    ScValType = 15
)

var scValTypeNames = map[ScValType]string{
	ScvBool:      "scvBool",
	ScvVoid:      "scvVoid",
	ScvError:     "scvError",
	ScvU32:       "scvU32",
	ScvI32:       "scvI32",
	ScvU64:       "scvU64",
	ScvI64:       "scvI64",
	ScvTimepoint: "scvTimepoint",
	ScvDuration:  "scvDuration",
	ScvU128:      "scvU128",
	ScvI128:      "scvI128",
	ScvU256:      "scvU256",
	ScvI256:      "scvI256",
	ScvBytes:     "scvBytes",
	ScvString:    "scvString",
	ScvSymbol:    "scvSymbol",
}

// String returns the protocol name of the discriminant (e.g. "scvU64").
func (t ScValType) String() string {
	if name, ok := scValTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ScValType(%d)", int32(t))
}

// Valid returns true if t is a known discriminant. A known discriminant is not
// necessarily one the codec handles: ScvError has no arm in ScVal and Encode
// and Decode reject it.
func (t ScValType) Valid() bool {
	_, ok := scValTypeNames[t]

	return ok
}

// IsInteger returns true if the arm selected by t is one of the integer
// variants (32, 64, 128 or 256 bits, signed or unsigned).
func (t ScValType) IsInteger() bool {
	switch t {
	case ScvU32, ScvI32,
		ScvU64, ScvI64,
		ScvU128, ScvI128,
		ScvU256, ScvI256:
		return true
	}

	return false
}
