// SPDX-License-Identifier: MIT

package record

import "strconv"

// Int32 parses tok as a base-10 signed 32-bit integer.
func Int32(tok string, line, field int) (int32, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Field: field, Token: tok, Err: err}
	}

	return int32(v), nil
}

// Float64 parses tok as a 64-bit float. "NaN" and "Inf" are accepted.
func Float64(tok string, line, field int) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Field: field, Token: tok, Err: err}
	}

	return v, nil
}

// Float32 parses tok as a single-precision float, rounding like a float32
// literal would.
func Float32(tok string, line, field int) (float32, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Field: field, Token: tok, Err: err}
	}

	return float32(v), nil
}

// Bool accepts exactly "true" or "false". Other spellings strconv.ParseBool
// would take ("1", "t", "TRUE", ...) are malformed.
func Bool(tok string, line, field int) (bool, error) {
	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		cause := &strconv.NumError{Func: "Bool", Num: tok, Err: strconv.ErrSyntax}
		return false, &ParseError{Line: line, Field: field, Token: tok, Err: cause}
	}
}
