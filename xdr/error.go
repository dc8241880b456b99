package xdr

import "github.com/zeebo/errs"

// Error is the class of errors produced by this package.
var Error = errs.Class("xdr")

// ErrInvalidOperation is returned when the codec is used incorrectly.
var ErrInvalidOperation = Error.New("invalid operation")
