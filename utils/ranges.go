// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// CS229Range returns the inclusive range a CS229 sample of bitDepth may hold.
// The 8-bit range is symmetric and excludes -128.
func CS229Range(bitDepth int) (lo, hi int64, ok bool) {
	switch bitDepth {
	case 8:
		return -127, 127, true
	case 16:
		return math.MinInt16, math.MaxInt16, true
	case 32:
		return math.MinInt32, math.MaxInt32, true
	}

	return 0, 0, false
}

// InCS229Range reports whether v is a legal CS229 sample at bitDepth.
func InCS229Range(v int64, bitDepth int) bool {
	lo, hi, ok := CS229Range(bitDepth)
	return ok && v >= lo && v <= hi
}

// MinSigned returns the smallest value a signed integer of bitDepth bits holds.
func MinSigned(bitDepth int) int64 {
	if bitDepth <= 0 || bitDepth > 64 {
		return 0
	}
	return -1 << (bitDepth - 1)
}

// MaxDigits is the widest decimal rendering of a CS229 sample, sign included:
// "-127", "-32768", "-2147483647".
func MaxDigits(bitDepth int) int {
	switch bitDepth {
	case 8:
		return 4
	case 16:
		return 6
	case 32:
		return 11
	}

	return 0
}
