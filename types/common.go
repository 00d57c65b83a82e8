package types

import (
	"strings"
)

// CastType denotes the Go type an Argument's raw value is converted to
type CastType int

const (
	CastString  CastType = iota // CastString keeps the raw value as a string
	CastInteger CastType = 1    // CastInteger truncates a numeric-looking value to an int
	CastFloat   CastType = 2    // CastFloat converts a numeric-looking value to a float64
)

// String returns the name used in usage output
func (c CastType) String() string {
	switch c {
	case CastInteger:
		return "integer"
	case CastFloat:
		return "float"
	case CastString:
		fallthrough
	default:
		return "string"
	}
}

// Matches reports whether v has the Go type values of this CastType are stored as
func (c CastType) Matches(v any) bool {
	switch v.(type) {
	case string:
		return c == CastString
	case int:
		return c == CastInteger
	case float64:
		return c == CastFloat
	}

	return false
}

// CastTypeResult classifies a castTo name
type CastTypeResult int

const (
	CastKnown   CastTypeResult = iota // CastKnown denotes a supported castTo name
	CastBool    CastTypeResult = 1    // CastBool denotes bool or boolean, which are not castTo types
	CastUnknown CastTypeResult = 2    // CastUnknown denotes any other name
)

// ParseCastType maps a castTo name to a CastType. Names are case-insensitive and
// the aliases int and double are accepted.
func ParseCastType(name string) (CastType, CastTypeResult) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string":
		return CastString, CastKnown
	case "int", "integer":
		return CastInteger, CastKnown
	case "float", "double":
		return CastFloat, CastKnown
	case "bool", "boolean":
		return CastString, CastBool
	}

	return CastString, CastUnknown
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
