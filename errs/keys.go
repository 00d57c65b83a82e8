// Package errs defines the translatable errors reported by gocli and the
// translation keys they are built from.
package errs

const (
	prefixKey = "gocli"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Error categories
const (
	ErrConfigKey = ErrorPrefixKey + ".config"
	ErrParseKey  = ParseErrorPathKey
)

// Argument declaration errors
const (
	ErrCastToBoolKey          = ErrorPrefixKey + ".cast_to_bool"
	ErrUnknownCastTypeKey     = ErrorPrefixKey + ".unknown_cast_type"
	ErrDefaultTypeMismatchKey = ErrorPrefixKey + ".default_type_mismatch"
	ErrDefaultNotAllowedKey   = ErrorPrefixKey + ".default_not_allowed"
	ErrPrefixedRequiredKey    = ErrorPrefixKey + ".prefixed_required"
	ErrRequiredOrderKey       = ErrorPrefixKey + ".required_order"
	ErrArgumentNotFoundKey    = ErrorPrefixKey + ".argument_not_found"
	ErrMissingNameKey         = ErrorPrefixKey + ".missing_name"
	ErrValueTypeKey           = ErrorPrefixKey + ".value_type"
)

// Parse errors
const (
	ErrArgumentRequiredKey = ParseErrorPathKey + ".argument_required"
	ErrNotIntegerKey       = ParseErrorPathKey + ".not_integer"
	ErrNotFloatKey         = ParseErrorPathKey + ".not_float"
	ErrMissingEqualSignKey = ParseErrorPathKey + ".missing_equal_sign"
	ErrNoValueArgumentKey  = ParseErrorPathKey + ".no_value_argument"
	ErrUnexpectedBoolKey   = ParseErrorPathKey + ".unexpected_bool"
	ErrSplitKey            = ParseErrorPathKey + ".split"
)

// Progress bar errors
const (
	ErrInvalidMaxKey     = ErrorPrefixKey + ".progress.invalid_max"
	ErrInvalidSymbolsKey = ErrorPrefixKey + ".progress.invalid_symbols"
)

// Declaration file errors
const (
	ErrUnsupportedFormatKey = ErrorPrefixKey + ".declare.unsupported_format"
	ErrDecodeKey            = ErrorPrefixKey + ".declare.decode"
)

// Usage headings
const (
	RequiredArgumentsKey = prefixKey + ".usage.required_arguments"
	OptionalArgumentsKey = prefixKey + ".usage.optional_arguments"
)
