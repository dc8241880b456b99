package numbers_test

import (
	"math/big"
	"strings"
)

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(s)
	}

	return v
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func add(a *big.Int, b int64) *big.Int {
	return new(big.Int).Add(a, big.NewInt(b))
}

func neg(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}
