package util

import (
	"math"
	"strconv"
	"strings"
)

// Number is the result of ParseNumeric
type Number struct {
	Int        int64
	Float      float64
	IsInt      bool
	IsFloat    bool
	IsNegative bool
}

// ParseNumeric reports whether s is a decimal numeric string: optional
// surrounding whitespace, an optional sign, digits with an optional fractional
// part and an optional exponent. Hex, octal, binary, Inf and NaN forms are not
// numeric strings. Integers too large for int64 are returned as floats.
func ParseNumeric(s string) (Number, bool) {
	s = strings.Trim(s, " \t\n\r\v\f")
	if !isDecimal(s) {
		return Number{}, false
	}

	n := Number{IsNegative: s[0] == '-'}
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			n.Int = i
			n.Float = float64(i)
			n.IsInt = true
			return n, true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return Number{}, false
	}
	n.Float = f
	n.IsFloat = true

	return n, true
}

// TruncateToInt converts n to an int, dropping any fractional part. It fails
// when the value does not fit in an int.
func TruncateToInt(n Number) (int, bool) {
	if n.IsInt {
		if n.Int > math.MaxInt || n.Int < math.MinInt {
			return 0, false
		}
		return int(n.Int), true
	}

	t := math.Trunc(n.Float)
	if math.IsInf(t, 0) || math.IsNaN(t) || t >= math.MaxInt || t < math.MinInt {
		return 0, false
	}

	return int(t), true
}

func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := digits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = digits(s[i:])
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := digits(s[i:])
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}

	return i == len(s)
}

func digits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
