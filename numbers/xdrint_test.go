package numbers_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/Lantah/go-lantah-base/numbers"
	"github.com/Lantah/go-lantah-base/xdr"
)

// conversions returns the six conversions of x keyed by target type.
func conversions(x *numbers.XdrInt) map[numbers.Type]func() (xdr.ScVal, error) {
	return map[numbers.Type]func() (xdr.ScVal, error){
		numbers.I64:  x.ToI64,
		numbers.U64:  x.ToU64,
		numbers.I128: x.ToI128,
		numbers.U128: x.ToU128,
		numbers.I256: x.ToI256,
		numbers.U256: x.ToU256,
	}
}

func TestXdrIntSizeCheck(t *testing.T) {
	for _, declared := range numbers.Types {
		x, err := numbers.NewXdrInt(declared, 0)
		require.NoError(t, err)

		for target, fn := range conversions(x) {
			t.Run(fmt.Sprintf("%s->%s", declared, target), func(t *testing.T) {
				scv, err := fn()
				if target.Width < declared.Width {
					require.Error(t, err)
					require.True(t, numbers.RangeError.Has(err))
					require.Contains(t, err.Error(), "too large")

					return
				}

				require.NoError(t, err)
				require.Equal(t, target.ScVal, scv.Type)

				v, err := numbers.FromScVal(scv)
				require.NoError(t, err)
				require.Equal(t, int64(0), v.Int64())
			})
		}
	}
}

func TestXdrIntRoundtrip(t *testing.T) {
	for _, tt := range numbers.Types {
		values := []*big.Int{
			tt.Min(),
			big.NewInt(0),
			big.NewInt(1),
			big.NewInt(80000085),
			tt.Max(),
		}
		if tt.Signed() {
			values = append(values, big.NewInt(-1), big.NewInt(-80000085))
		}

		for _, v := range values {
			t.Run(fmt.Sprintf("%s/%s", tt, v), func(t *testing.T) {
				x, err := numbers.NewXdrInt(tt, v)
				require.NoError(t, err)

				scv, err := x.ToScVal()
				require.NoError(t, err)
				require.Equal(t, tt.ScVal, scv.Type)

				got, err := numbers.FromScVal(scv)
				require.NoError(t, err)
				require.Equal(t, 0, v.Cmp(got), "want=%s got=%s", v, got)

				b64, err := scv.MarshalBase64()
				require.NoError(t, err)

				decoded := xdr.ScVal{}
				require.NoError(t, xdr.SafeUnmarshalBase64(b64, &decoded))

				y, err := numbers.NewXdrIntFromScVal(decoded)
				require.NoError(t, err)
				require.Equal(t, tt, y.Type())
				require.Equal(t, v.String(), y.String())
			})
		}
	}
}

func TestXdrIntToI64(t *testing.T) {
	t.Run("u64 above 2^63-1", func(t *testing.T) {
		x, err := numbers.NewXdrInt(numbers.U64, uint64(1)<<63)
		require.NoError(t, err)

		_, err = x.ToI64()
		require.Error(t, err)
		require.True(t, numbers.RangeError.Has(err))
		require.Contains(t, err.Error(), "too large for i64")

		scv, err := x.ToU64()
		require.NoError(t, err)

		u, ok := scv.GetU64()
		require.True(t, ok)
		require.Equal(t, xdr.Uint64(1<<63), u)
	})

	t.Run("u64 at 2^63-1", func(t *testing.T) {
		x, err := numbers.NewXdrInt(numbers.U64, uint64(math.MaxInt64))
		require.NoError(t, err)

		scv, err := x.ToI64()
		require.NoError(t, err)

		i, ok := scv.GetI64()
		require.True(t, ok)
		require.Equal(t, xdr.Int64(math.MaxInt64), i)
	})

	t.Run("negative i64 to u64 reinterprets", func(t *testing.T) {
		x, err := numbers.NewXdrInt(numbers.I64, -800000085)
		require.NoError(t, err)

		scv, err := x.ToU64()
		require.NoError(t, err)

		u, ok := scv.GetU64()
		require.True(t, ok)
		require.Equal(t, xdr.Uint64(^uint64(800000085)+1), u)
	})
}

func TestXdrIntWords(t *testing.T) {
	type TC struct {
		value int64
		i128  xdr.Int128Parts
		i256  xdr.Int256Parts
		Mark  error
	}

	tcs := []TC{
		{
			value: 800000085,
			i128:  xdr.Int128Parts{Hi: 0, Lo: 800000085},
			i256:  xdr.Int256Parts{LoLo: 800000085},
			Mark:  oops.New("unexpected"),
		},
		{
			value: -800000085,
			i128: xdr.Int128Parts{
				Hi: math.MaxUint64,
				Lo: xdr.Uint64(^uint64(800000085) + 1),
			},
			i256: xdr.Int256Parts{
				HiHi: math.MaxUint64,
				HiLo: math.MaxUint64,
				LoHi: math.MaxUint64,
				LoLo: xdr.Uint64(^uint64(800000085) + 1),
			},
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.value), func(t *testing.T) {
			x, err := numbers.NewScInt(tc.value)
			require.NoError(t, err, tc.Mark)

			scv, err := x.ToI128()
			require.NoError(t, err, tc.Mark)

			p, ok := scv.GetI128()
			require.True(t, ok, tc.Mark)
			require.Equal(t, tc.i128, p, tc.Mark)

			scv, err = x.ToI256()
			require.NoError(t, err, tc.Mark)

			q, ok := scv.GetI256()
			require.True(t, ok, tc.Mark)
			require.Equal(t, tc.i256, q, tc.Mark)

			// The same words read back as i128 give the value; read as u256
			// they give its two's complement modulo 2^256.
			i, err := numbers.FromWords(numbers.I128, p.Words()...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.value, i.BigInt().Int64(), tc.Mark)

			u, err := numbers.FromWords(numbers.U256, q.Words()...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, 0, new(big.Int).Mod(big.NewInt(tc.value), pow2(256)).Cmp(u.BigInt()), tc.Mark)
		})
	}
}

func TestXdrIntToNumber(t *testing.T) {
	type TC struct {
		value *big.Int
		ok    bool
		Mark  error
	}

	safe := add(pow2(53), -1)

	tcs := []TC{
		{big.NewInt(0), true, oops.New("unexpected")},
		{big.NewInt(-800000085), true, oops.New("unexpected")},
		{safe, true, oops.New("unexpected")},
		{neg(safe), true, oops.New("unexpected")},
		{pow2(53), false, oops.New("unexpected")},
		{neg(pow2(53)), false, oops.New("unexpected")},
		{pow2(64), false, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.value.String(), func(t *testing.T) {
			x, err := numbers.NewScInt(tc.value)
			require.NoError(t, err, tc.Mark)

			n, err := x.ToNumber()
			if !tc.ok {
				require.Error(t, err, tc.Mark)
				require.True(t, numbers.RangeError.Has(err), tc.Mark)
				require.Contains(t, err.Error(), "too large", tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.value.Int64(), n, tc.Mark)
		})
	}
}

func TestXdrIntNamed(t *testing.T) {
	x, err := numbers.NewXdrIntNamed("u128", uint64(1), uint64(2))
	require.NoError(t, err)
	require.Equal(t, numbers.U128, x.Type())
	require.Equal(t, add(new(big.Int).Lsh(big.NewInt(2), 64), 1).String(), x.String())
	require.Equal(t, 0, x.ValueOf().Cmp(x.ToBigInt()))

	_, err = numbers.NewXdrIntNamed("i32", 1)
	require.Error(t, err)
	require.True(t, numbers.InvalidTypeError.Has(err))
}

func TestXdrIntJSON(t *testing.T) {
	x, err := numbers.NewXdrInt(numbers.I256, -7)
	require.NoError(t, err)

	data, err := json.Marshal(x)
	require.NoError(t, err)
	require.JSONEq(t, `{"value":"-7","type":"i256"}`, string(data))

	y := &numbers.XdrInt{}
	require.NoError(t, json.Unmarshal(data, y))
	require.Equal(t, numbers.I256, y.Type())
	require.Equal(t, "-7", y.String())

	err = json.Unmarshal([]byte(`{"value":"-7","type":"u64"}`), y)
	require.True(t, numbers.RangeError.Has(err))

	err = json.Unmarshal([]byte(`{"value":"1","type":"x"}`), y)
	require.True(t, numbers.InvalidTypeError.Has(err))
}

func TestParseJSON(t *testing.T) {
	x, err := numbers.ParseJSON([]byte(`{"value":"340282366920938463463374607431768211455","type":"u128"}`))
	require.NoError(t, err)
	require.Equal(t, numbers.U128, x.Type())
	require.Equal(t, "340282366920938463463374607431768211455", x.String())

	_, err = numbers.ParseJSON([]byte(`[1]`))
	require.True(t, numbers.TypeError.Has(err))

	var nilInt *numbers.XdrInt
	err = nilInt.UnmarshalJSON([]byte(`{"value":"5","type":"u64"}`))
	require.Error(t, err)
	require.True(t, numbers.TypeError.Has(err))
}
