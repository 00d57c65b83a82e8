package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected Number
		valid    bool
	}{
		// Integers
		{"123", Number{Int: 123, Float: 123, IsInt: true}, true},
		{"-456", Number{Int: -456, Float: -456, IsInt: true, IsNegative: true}, true},
		{"+7", Number{Int: 7, Float: 7, IsInt: true}, true},
		{" 42\n", Number{Int: 42, Float: 42, IsInt: true}, true},
		{"0755", Number{Int: 755, Float: 755, IsInt: true}, true}, // leading zeros are decimal
		{"9223372036854775807", Number{Int: math.MaxInt64, Float: math.MaxInt64, IsInt: true}, true},

		// Floats
		{"123.45", Number{Float: 123.45, IsFloat: true}, true},
		{"-678.90", Number{Float: -678.90, IsFloat: true, IsNegative: true}, true},
		{".5", Number{Float: 0.5, IsFloat: true}, true},
		{"5.", Number{Float: 5, IsFloat: true}, true},
		{"1e6", Number{Float: 1e6, IsFloat: true}, true},
		{"2.5E-3", Number{Float: 0.0025, IsFloat: true}, true},
		{"99999999999999999999", Number{Float: 1e20, IsFloat: true}, true},

		// Not numeric
		{"", Number{}, false},
		{" ", Number{}, false},
		{"abc", Number{}, false},
		{"12.3.4", Number{}, false},
		{"12,5", Number{}, false},
		{"0x1a", Number{}, false},
		{"--123", Number{}, false},
		{"1e", Number{}, false},
		{".", Number{}, false},
		{"NaN", Number{}, false},
		{"Inf", Number{}, false},
		{"1_000", Number{}, false},
		{"12abc", Number{}, false},
		{"漢字", Number{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, ok := ParseNumeric(tt.input)

			assert.Equal(t, tt.valid, ok, "Validity mismatch")
			if !tt.valid {
				return
			}

			assert.Equal(t, tt.expected.IsInt, actual.IsInt, "IsInt mismatch")
			assert.Equal(t, tt.expected.IsFloat, actual.IsFloat, "IsFloat mismatch")
			assert.Equal(t, tt.expected.IsNegative, actual.IsNegative, "IsNegative mismatch")
			if actual.IsInt {
				assert.Equal(t, tt.expected.Int, actual.Int, "Int value mismatch")
			}
			assert.InDelta(t, tt.expected.Float, actual.Float, 1e-9, "Float value mismatch")
		})
	}
}

func TestTruncateToInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"23", 23, true},
		{"23.23", 23, true},
		{"-23.99", -23, true},
		{"1e3", 1000, true},
		{"0.5", 0, true},
		{"1e300", 0, false},
		{"-1e300", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, valid := ParseNumeric(tt.input)
			assert.True(t, valid)

			actual, ok := TruncateToInt(n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
