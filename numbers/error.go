package numbers

import "github.com/zeebo/errs"

// Error classes. Use Has to test for them:
//
//  if numbers.RangeError.Has(err) {
//  	...
//  }
var (
	// InvalidTypeError is returned for a type name or Type outside the six
	// supported integer types.
	InvalidTypeError = errs.Class("invalid type")

	// RangeError is returned when a value does not fit the declared or
	// requested type, or when a conversion would narrow the declared
	// width.
	RangeError = errs.Class("range")

	// TypeError is returned for inputs that are not integers at all
	// (unsupported Go types, non-integer ScVal variants).
	TypeError = errs.Class("type")
)
