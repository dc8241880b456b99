package xdr

// Uint32 is an unsigned 32 bit wire word.
type Uint32 uint32

// Int32 is a signed 32 bit wire word.
type Int32 int32

// Uint64 is an unsigned 64 bit wire word.
type Uint64 uint64

// Int64 is a signed 64 bit wire word.
type Int64 int64

// UInt128Parts carries an unsigned 128 bit integer.
type UInt128Parts struct {
	Hi Uint64
	Lo Uint64
}

// Words returns the words least significant first.
func (p UInt128Parts) Words() []uint64 {
	return []uint64{uint64(p.Lo), uint64(p.Hi)}
}

// Int128Parts carries a signed 128 bit integer. The sign is bit 63 of Hi.
type Int128Parts struct {
	Hi Uint64
	Lo Uint64
}

// Words returns the words least significant first.
func (p Int128Parts) Words() []uint64 {
	return []uint64{uint64(p.Lo), uint64(p.Hi)}
}

// UInt256Parts carries an unsigned 256 bit integer.
type UInt256Parts struct {
	HiHi Uint64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

// Words returns the words least significant first.
func (p UInt256Parts) Words() []uint64 {
	return []uint64{uint64(p.LoLo), uint64(p.LoHi), uint64(p.HiLo), uint64(p.HiHi)}
}

// Int256Parts carries a signed 256 bit integer. The sign is bit 63 of HiHi.
type Int256Parts struct {
	HiHi Uint64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

// Words returns the words least significant first.
func (p Int256Parts) Words() []uint64 {
	return []uint64{uint64(p.LoLo), uint64(p.LoHi), uint64(p.HiLo), uint64(p.HiHi)}
}

// ScVal is the protocol's tagged union value. Exactly one arm matching Type
// is set.
type ScVal struct {
	Type ScValType

	B         *bool
	U32       *Uint32
	I32       *Int32
	U64       *Uint64
	I64       *Int64
	Timepoint *Uint64
	Duration  *Uint64
	U128      *UInt128Parts
	I128      *Int128Parts
	U256      *UInt256Parts
	I256      *Int256Parts
	Bytes     *[]byte
	Str       *string
	Sym       *string
}

// NewScvBool returns a scvBool value.
func NewScvBool(b bool) ScVal {
	return ScVal{Type: ScvBool, B: &b}
}

// NewScvVoid returns a scvVoid value.
func NewScvVoid() ScVal {
	return ScVal{Type: ScvVoid}
}

// NewScvU32 returns a scvU32 value.
func NewScvU32(v Uint32) ScVal {
	return ScVal{Type: ScvU32, U32: &v}
}

// NewScvI32 returns a scvI32 value.
func NewScvI32(v Int32) ScVal {
	return ScVal{Type: ScvI32, I32: &v}
}

// NewScvU64 returns a scvU64 value.
func NewScvU64(v Uint64) ScVal {
	return ScVal{Type: ScvU64, U64: &v}
}

// NewScvI64 returns a scvI64 value.
func NewScvI64(v Int64) ScVal {
	return ScVal{Type: ScvI64, I64: &v}
}

// NewScvTimepoint returns a scvTimepoint value.
func NewScvTimepoint(v Uint64) ScVal {
	return ScVal{Type: ScvTimepoint, Timepoint: &v}
}

// NewScvDuration returns a scvDuration value.
func NewScvDuration(v Uint64) ScVal {
	return ScVal{Type: ScvDuration, Duration: &v}
}

// NewScvU128 returns a scvU128 value.
func NewScvU128(v UInt128Parts) ScVal {
	return ScVal{Type: ScvU128, U128: &v}
}

// NewScvI128 returns a scvI128 value.
func NewScvI128(v Int128Parts) ScVal {
	return ScVal{Type: ScvI128, I128: &v}
}

// NewScvU256 returns a scvU256 value.
func NewScvU256(v UInt256Parts) ScVal {
	return ScVal{Type: ScvU256, U256: &v}
}

// NewScvI256 returns a scvI256 value.
func NewScvI256(v Int256Parts) ScVal {
	return ScVal{Type: ScvI256, I256: &v}
}

// NewScvBytes returns a scvBytes value.
func NewScvBytes(v []byte) ScVal {
	return ScVal{Type: ScvBytes, Bytes: &v}
}

// NewScvString returns a scvString value.
func NewScvString(v string) ScVal {
	return ScVal{Type: ScvString, Str: &v}
}

// NewScvSymbol returns a scvSymbol value.
func NewScvSymbol(v string) ScVal {
	return ScVal{Type: ScvSymbol, Sym: &v}
}

// GetU32 returns the scvU32 arm.
func (v ScVal) GetU32() (Uint32, bool) {
	if v.Type != ScvU32 || v.U32 == nil {
		return 0, false
	}

	return *v.U32, true
}

// GetI32 returns the scvI32 arm.
func (v ScVal) GetI32() (Int32, bool) {
	if v.Type != ScvI32 || v.I32 == nil {
		return 0, false
	}

	return *v.I32, true
}

// GetU64 returns the scvU64 arm.
func (v ScVal) GetU64() (Uint64, bool) {
	if v.Type != ScvU64 || v.U64 == nil {
		return 0, false
	}

	return *v.U64, true
}

// GetI64 returns the scvI64 arm.
func (v ScVal) GetI64() (Int64, bool) {
	if v.Type != ScvI64 || v.I64 == nil {
		return 0, false
	}

	return *v.I64, true
}

// GetU128 returns the scvU128 arm.
func (v ScVal) GetU128() (UInt128Parts, bool) {
	if v.Type != ScvU128 || v.U128 == nil {
		return UInt128Parts{}, false
	}

	return *v.U128, true
}

// GetI128 returns the scvI128 arm.
func (v ScVal) GetI128() (Int128Parts, bool) {
	if v.Type != ScvI128 || v.I128 == nil {
		return Int128Parts{}, false
	}

	return *v.I128, true
}

// GetU256 returns the scvU256 arm.
func (v ScVal) GetU256() (UInt256Parts, bool) {
	if v.Type != ScvU256 || v.U256 == nil {
		return UInt256Parts{}, false
	}

	return *v.U256, true
}

// GetI256 returns the scvI256 arm.
func (v ScVal) GetI256() (Int256Parts, bool) {
	if v.Type != ScvI256 || v.I256 == nil {
		return Int256Parts{}, false
	}

	return *v.I256, true
}
