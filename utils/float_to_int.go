// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt64 truncates x toward zero, saturating at the int64 range.
// NaN maps to 0.
func FloatToInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}

	return int64(x)
}
