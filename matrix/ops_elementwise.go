// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the private element-wise kernels (ew*) behind Add, Sub and Scale.
//
// Determinism & Performance:
//   - Fixed loop order i→j; one allocation per result row.

package matrix

// ewAddSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Width is taken from a's first row; rows longer than that are truncated and
// shorter ones fail with ErrRaggedRow.
// Time: O(r*c). Space: O(r*c).
func ewAddSub(a, b Matrix, sign int32, opTag string) (Matrix, error) {
	// Validate shapes (shallow)
	if err := ValidateSameShape(a, b); err != nil {
		return Matrix{}, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := zeros(rows, cols)
	for i := 0; i < rows; i++ {
		ra, rb := a.data[i], b.data[i]
		if err := validateRowWidth(ra, i, cols); err != nil {
			return Matrix{}, matrixErrorf(opTag, err)
		}
		if err := validateRowWidth(rb, i, cols); err != nil {
			return Matrix{}, matrixErrorf(opTag, err)
		}
		out := res.data[i]
		for j := 0; j < cols; j++ {
			out[j] = ra[j] + sign*rb[j] // wraps on overflow
		}
	}

	return res, nil
}

// ewScale computes out[i][j] = m[i][j] * k over every stored element.
// Time: O(r*c). Space: O(r*c).
func ewScale(m Matrix, k int32) Matrix {
	data := make([][]int32, len(m.data))
	for i, row := range m.data {
		out := make([]int32, len(row))
		for j, v := range row {
			out[j] = v * k
		}
		data[i] = out
	}

	return Matrix{data: data}
}
