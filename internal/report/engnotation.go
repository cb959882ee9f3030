// Package report renders benchmark results and run comparisons as
// fixed-column text tables, with durations in engineering notation.
package report

import (
	"fmt"
	"math"
)

// siPrefixes maps power-of-1000 exponents -8..8 (yocto..yotta) to their SI
// prefix. Index by exponent + siPrefixOffset.
var siPrefixes = [...]string{
	"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y",
}

const siPrefixOffset = 8

// FormatEng formats v in engineering notation: the mantissa is scaled to
// the nearest power-of-1000 exponent, printed with three digits after the
// decimal point and fixed-width left padding, and followed by the SI prefix
// and unit, e.g. FormatEng(7.5e-9, "s") == "  7.500ns". Values outside the
// yocto..yotta range are rejected explicitly rather than mis-indexed.
func FormatEng(v float64, unit string) (string, error) {
	if v == 0 {
		return fmt.Sprintf("%7.3f%s", 0.0, unit), nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("cannot format %v in engineering notation", v)
	}

	exp := int(math.Floor(math.Log10(math.Abs(v)) / 3))
	mantissa := v / math.Pow(1000, float64(exp))

	// Rounding can push the mantissa to 1000.000; carry into the next group.
	if math.Abs(mantissa) >= 999.9995 {
		mantissa /= 1000
		exp++
	}

	if exp < -siPrefixOffset || exp > siPrefixOffset {
		return "", fmt.Errorf("value %g is outside the yocto..yotta prefix range", v)
	}

	return fmt.Sprintf("%7.3f%s%s", mantissa, siPrefixes[exp+siPrefixOffset], unit), nil
}

// Duration formats a duration in seconds with an SI prefix, falling back to
// plain scientific notation for values no prefix covers.
func Duration(seconds float64) string {
	s, err := FormatEng(seconds, "s")
	if err != nil {
		return fmt.Sprintf("%g s", seconds)
	}
	return s
}
