package xdr_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/Lantah/go-lantah-base/xdr"
)

func TestEncoder(t *testing.T) {
	type TC struct {
		Input  xdr.ScVal
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  xdr.NewScvBool(true),
			Output: []byte{0, 0, 0, 0, 0, 0, 0, 1},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvVoid(),
			Output: []byte{0, 0, 0, 1},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvU32(0xdeadbeef),
			Output: []byte{0, 0, 0, 3, 0xde, 0xad, 0xbe, 0xef},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvI32(-2),
			Output: []byte{0, 0, 0, 4, 0xff, 0xff, 0xff, 0xfe},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvU64(1),
			Output: []byte{0, 0, 0, 5, 0, 0, 0, 0, 0, 0, 0, 1},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvI64(-1),
			Output: []byte{0, 0, 0, 6, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Mark:   oops.New("unexpected"),
		},
		{
			Input: xdr.NewScvU128(xdr.UInt128Parts{Hi: 1, Lo: 2}),
			Output: []byte{
				0, 0, 0, 9,
				0, 0, 0, 0, 0, 0, 0, 1,
				0, 0, 0, 0, 0, 0, 0, 2,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input: xdr.NewScvI128(xdr.Int128Parts{Hi: 0xffff_ffff_ffff_ffff, Lo: 0xffff_ffff_ffff_fffe}),
			Output: []byte{
				0, 0, 0, 10,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input: xdr.NewScvU256(xdr.UInt256Parts{HiHi: 4, HiLo: 3, LoHi: 2, LoLo: 1}),
			Output: []byte{
				0, 0, 0, 11,
				0, 0, 0, 0, 0, 0, 0, 4,
				0, 0, 0, 0, 0, 0, 0, 3,
				0, 0, 0, 0, 0, 0, 0, 2,
				0, 0, 0, 0, 0, 0, 0, 1,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input: xdr.NewScvI256(xdr.Int256Parts{HiHi: 0x8000_0000_0000_0000}),
			Output: []byte{
				0, 0, 0, 12,
				0x80, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			Mark: oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvString("hello"),
			Output: []byte{0, 0, 0, 14, 0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', 0, 0, 0},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvSymbol("abcd"),
			Output: []byte{0, 0, 0, 15, 0, 0, 0, 4, 'a', 'b', 'c', 'd'},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  xdr.NewScvBytes([]byte{}),
			Output: []byte{0, 0, 0, 13, 0, 0, 0, 0},
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Input.Type), func(t *testing.T) {
			output := &bytes.Buffer{}
			e := xdr.NewEncoder(output)

			err := e.Encode(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
		})
	}

	t.Run("missing arm", func(t *testing.T) {
		err := xdr.NewEncoder(&bytes.Buffer{}).Encode(xdr.ScVal{Type: xdr.ScvU128})
		require.Error(t, err)
		require.True(t, xdr.Error.Has(err))
		require.Contains(t, err.Error(), "missing arm for scvU128")
	})

	t.Run("unsupported", func(t *testing.T) {
		output := &bytes.Buffer{}

		err := xdr.NewEncoder(output).Encode(xdr.ScVal{Type: xdr.ScvError})
		require.Error(t, err)
		require.Equal(t, 0, output.Len())
	})
}
