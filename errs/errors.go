package errs

import (
	"errors"
	"sync"

	"github.com/napalu/gocli/i18n"
)

// Error categories. Every parse error is also a configuration error.
var (
	ErrConfig = i18n.NewError(ErrConfigKey)
	ErrParse  = i18n.NewChildError(ErrParseKey, ErrConfig)
)

// Argument declaration and lookup errors
var (
	ErrCastToBool          = i18n.NewChildError(ErrCastToBoolKey, ErrConfig)
	ErrUnknownCastType     = i18n.NewChildError(ErrUnknownCastTypeKey, ErrConfig)
	ErrDefaultTypeMismatch = i18n.NewChildError(ErrDefaultTypeMismatchKey, ErrConfig)
	ErrDefaultNotAllowed   = i18n.NewChildError(ErrDefaultNotAllowedKey, ErrConfig)
	ErrPrefixedRequired    = i18n.NewChildError(ErrPrefixedRequiredKey, ErrConfig)
	ErrRequiredOrder       = i18n.NewChildError(ErrRequiredOrderKey, ErrConfig)
	ErrArgumentNotFound    = i18n.NewChildError(ErrArgumentNotFoundKey, ErrConfig)
	ErrMissingName         = i18n.NewChildError(ErrMissingNameKey, ErrConfig)
	ErrValueType           = i18n.NewChildError(ErrValueTypeKey, ErrConfig)
)

// Parse errors
var (
	ErrArgumentRequired = i18n.NewChildError(ErrArgumentRequiredKey, ErrParse)
	ErrNotInteger       = i18n.NewChildError(ErrNotIntegerKey, ErrParse)
	ErrNotFloat         = i18n.NewChildError(ErrNotFloatKey, ErrParse)
	ErrMissingEqualSign = i18n.NewChildError(ErrMissingEqualSignKey, ErrParse)
	ErrNoValueArgument  = i18n.NewChildError(ErrNoValueArgumentKey, ErrParse)
	ErrUnexpectedBool   = i18n.NewChildError(ErrUnexpectedBoolKey, ErrParse)
	ErrSplit            = i18n.NewChildError(ErrSplitKey, ErrParse)
)

// Declaration file errors
var (
	ErrUnsupportedFormat = i18n.NewChildError(ErrUnsupportedFormatKey, ErrConfig)
	ErrDecode            = i18n.NewChildError(ErrDecodeKey, ErrConfig)
)

// Progress bar errors
var (
	ErrInvalidMax     = i18n.NewError(ErrInvalidMaxKey)
	ErrInvalidSymbols = i18n.NewError(ErrInvalidSymbolsKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrConfig,
		ErrParse,
		ErrCastToBool,
		ErrUnknownCastType,
		ErrDefaultTypeMismatch,
		ErrDefaultNotAllowed,
		ErrPrefixedRequired,
		ErrRequiredOrder,
		ErrArgumentNotFound,
		ErrMissingName,
		ErrValueType,
		ErrArgumentRequired,
		ErrNotInteger,
		ErrNotFloat,
		ErrMissingEqualSign,
		ErrNoValueArgument,
		ErrUnexpectedBool,
		ErrSplit,
		ErrUnsupportedFormat,
		ErrDecode,
		ErrInvalidMax,
		ErrInvalidSymbols,
	},
}

// UpdateMessageProvider updates the message provider of all built-in errors.
// Errors derived from a built-in error afterwards use the new provider too.
//
// Example:
//
//	provider := i18n.NewBundleMessageProviderFor(i18n.Default(), language.French)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	defer sysErrors.mu.Unlock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
}

// IsConfigError reports whether err is an argument configuration error. Parse
// errors are configuration errors too.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsParseError reports whether err was raised while parsing command-line tokens.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
