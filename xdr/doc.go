// Package xdr provides the subset of the ledger's XDR wire format needed to
// carry typed integer values.
//
// ScVal
//
// An ScVal is a tagged union. The discriminant is a 32 bit signed integer
// followed by the arm selected by it:
//
//  | Discriminant | Name          | Arm                                        |
//  |--------------|---------------|--------------------------------------------|
//  |  0           | scvBool       | uint32 (0 or 1)                            |
//  |  1           | scvVoid       | (nothing)                                  |
//  |  3           | scvU32        | uint32                                     |
//  |  4           | scvI32        | int32                                      |
//  |  5           | scvU64        | uint64                                     |
//  |  6           | scvI64        | int64                                      |
//  |  7           | scvTimepoint  | uint64                                     |
//  |  8           | scvDuration   | uint64                                     |
//  |  9           | scvU128       | hi uint64, lo uint64                       |
//  | 10           | scvI128       | hi uint64, lo uint64                       |
//  | 11           | scvU256       | hiHi, hiLo, loHi, loLo uint64              |
//  | 12           | scvI256       | hiHi, hiLo, loHi, loLo uint64              |
//  | 13           | scvBytes      | uint32 length, data, zero padding          |
//  | 14           | scvString     | uint32 length, data, zero padding          |
//  | 15           | scvSymbol     | uint32 length, data, zero padding          |
//  |--------------|---------------|--------------------------------------------|
//
// All integers are big-endian. Variable length data is padded with zero bytes
// to a multiple of 4.
//
// Words
//
// Wide integers are split into 64 bit words. Every word is carried as an
// unsigned 64 bit value, even for the signed variants: the sign of a signed
// 128 bit value lives in bit 63 of hi and the sign of a signed 256 bit value
// lives in bit 63 of hiHi. How the words are recombined is up to the reader
// (see package numbers).
//
//  | 255 ... 192 | 191 ... 128 | 127 ... 64 | 63 ... 0 |
//  |-------------|-------------|------------|----------|
//  | hiHi        | hiLo        | loHi       | loLo     | 256 bit
//  |             |             | hi         | lo       | 128 bit
//  |             |             |            | word     | 64 bit
package xdr
