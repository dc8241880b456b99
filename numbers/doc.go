// Package numbers converts 64, 128 and 256 bit integers between native Go
// values, arbitrary precision integers and the wire words carried by an
// xdr.ScVal.
//
// There are three layers:
//
//  Fixed   a value of one of the six Types (i64, u64, i128, u128, i256,
//          u256). Always within the range of its Type.
//  XdrInt  wraps a Fixed and converts it to any ScVal integer variant at
//          least as wide as its declared Type.
//  ScInt   an XdrInt whose Type is either given explicitly or inferred as
//          the smallest Type that holds the value.
//
// Conversions never truncate silently. Narrowing is refused based on the
// declared Type alone: an i128 holding 1 cannot produce an i64 or u64. Build a
// new value with the narrower Type instead.
//
//  x, err := numbers.NewScInt("123456789123456789123456789")
//  if err != nil {
//  	return err
//  }
//
//  scv, err := x.ToI128()
//
// The reverse direction goes through FromScVal, which accepts every integer
// variant including the 32 bit ones:
//
//  v, err := numbers.FromScVal(scv)
package numbers
