package numbers

import (
	"math/big"

	"github.com/holiman/uint256"
)

var (
	big1 = big.NewInt(1)

	two256 = pow2(256)

	// Bounds of a single 64 bit word accepted by multi-word construction:
	// anything that is a valid int64 or uint64.
	minWord = new(big.Int).Neg(pow2(63))
	maxWord = new(big.Int).Sub(pow2(64), big1)
)

func pow2(n int) *big.Int {
	return new(big.Int).Lsh(big1, uint(n))
}

// asUintN returns v modulo 2^bits (i.e. the low bits of its two's complement
// form read as unsigned).
func asUintN(bits int, v *big.Int) *big.Int {
	return new(big.Int).Mod(v, pow2(bits))
}

// asIntN returns the low bits of v's two's complement form read as signed.
func asIntN(bits int, v *big.Int) *big.Int {
	u := asUintN(bits, v)
	if u.Bit(bits-1) == 1 {
		u.Sub(u, pow2(bits))
	}

	return u
}

// toWords returns the two's complement form of v modulo 2^256 as four words,
// least significant first.
func toWords(v *big.Int) [4]uint64 {
	u, _ := uint256.FromBig(new(big.Int).Mod(v, two256))

	return [4]uint64(*u)
}

// fromWords recombines words (least significant first) into a value of
// 64*len(words) bits. When signed is set the top bit of the last word is the
// sign.
func fromWords(signed bool, words ...uint64) *big.Int {
	var u uint256.Int
	for i, w := range words {
		u[i] = w
	}

	v := u.ToBig()

	bits := 64 * len(words)
	if signed && v.Bit(bits-1) == 1 {
		v.Sub(v, pow2(bits))
	}

	return v
}
