// Package decimal provides fixed point base 10 amounts carried on the wire as
// integers.
//
// The equation for a decimal amount is:
//
//  amount = value * 10 ^ -scale
//
// Where amount is the human readable number, value is the unscaled integer
// that goes on the wire and scale is the number of fractional digits. For
// example, with a scale of 7:
//
//  1.23      = 12300000 * 10^-7
//  0.0000001 = 1        * 10^-7
//
// Parsing
//
// Parse accepts an optional sign, integer digits, and an optional fractional
// part of at most scale digits:
//
//  | Input        | Scale | Value      |
//  |--------------|-------|------------|
//  | "100"        | 7     | 1000000000 |
//  | "12.5"       | 7     | 125000000  |
//  | "-0.0000001" | 7     | -1         |
//  | ".5"         | 2     | 50         |
//  | "1.234"      | 2     | error      |
//  |--------------|-------|------------|
//
// Exponents, separators and surrounding whitespace are rejected.
//
// Formatting
//
// String renders the shortest exact form: trailing fractional zeros are
// dropped and a whole amount has no decimal point.
//
// Amounts
//
// The ledger's native amounts use a scale of 7 stored in an i64. Amount and
// FormatAmount handle that case.
package decimal
