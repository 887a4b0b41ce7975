package compute

import (
	"math"
	"strconv"
	"strings"
)

// FormatMean renders v the way the CLI prints it: the shortest decimal
// representation, with ".0" appended to integral finite values so a whole
// mean still reads as a floating-point result (5.0 rather than 5).
func FormatMean(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
