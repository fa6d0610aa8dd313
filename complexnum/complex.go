// SPDX-License-Identifier: MIT

package complexnum

import "strconv"

// Complex is the number Real + Imag·i with float32 components.
type Complex struct {
	Real, Imag float32
}

// New returns re + im·i.
func New(re, im float32) Complex { return Complex{Real: re, Imag: im} }

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Real: a.Real + b.Real, Imag: a.Imag + b.Imag}
}

// Sub returns a − b.
func Sub(a, b Complex) Complex {
	return Complex{Real: a.Real - b.Real, Imag: a.Imag - b.Imag}
}

// Mul returns a·b = (ac − bd) + (ad + bc)i.
func Mul(a, b Complex) Complex {
	return Complex{
		Real: a.Real*b.Real - a.Imag*b.Imag,
		Imag: a.Real*b.Imag + a.Imag*b.Real,
	}
}

// Div returns a / b computed as a·conj(b) / |b|².
// It fails with ErrDivisionByZero only when both components of b are exactly
// zero; a tiny divisor whose squared norm underflows still divides.
func Div(a, b Complex) (Complex, error) {
	if b.Real == 0 && b.Imag == 0 {
		return Complex{}, ErrDivisionByZero
	}
	den := b.Real*b.Real + b.Imag*b.Imag

	return Complex{
		Real: (a.Real*b.Real + a.Imag*b.Imag) / den,
		Imag: (a.Imag*b.Real - a.Real*b.Imag) / den,
	}, nil
}

// String renders c as "re + imi", e.g. "1 + 2i" or "0.5 + -3i".
func (c Complex) String() string {
	return formatF32(c.Real) + " + " + formatF32(c.Imag) + "i"
}

func formatF32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
