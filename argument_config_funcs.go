package gocli

import "github.com/napalu/gocli/types"

// ConfigureArgumentFunc sets one entry of an argument declaration
type ConfigureArgumentFunc func(options Options)

// NewArg convenience initialization method to configure arguments. Each
// function writes one option key, so NewArg validates exactly like NewArgument.
//
// Usage example:
//
//	arg, err := NewArg("count",
//	    WithDescription("number of iterations"),
//	    WithCastTo(types.CastInteger),
//	    WithDefaultValue(10),
//	)
func NewArg(name string, configs ...ConfigureArgumentFunc) (*Argument, error) {
	options := Options{}
	for _, config := range configs {
		config(options)
	}

	return NewArgument(name, options)
}

// MustArg is like NewArg but panics on a declaration error. It is intended for
// package-level declarations.
func MustArg(name string, configs ...ConfigureArgumentFunc) *Argument {
	arg, err := NewArg(name, configs...)
	if err != nil {
		panic(err)
	}
	return arg
}

func WithDescription(description string) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionDescription.Key()] = description
	}
}

// SetRequired marks the argument as a required positional argument
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionRequired.Key()] = required
	}
}

// SetNoValue turns the argument into a presence flag
func SetNoValue(noValue bool) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionNoValue.Key()] = noValue
	}
}

// WithPrefix sets the short flag, written without its dash
func WithPrefix(prefix string) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionPrefix.Key()] = prefix
	}
}

// WithLongPrefix sets the long flag, written without its dashes
func WithLongPrefix(longPrefix string) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionLongPrefix.Key()] = longPrefix
	}
}

func WithCastTo(castTo types.CastType) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionCastTo.Key()] = castTo.String()
	}
}

// WithDefaultValue sets the default value. Only string, int and float64 values
// are kept.
func WithDefaultValue(value any) ConfigureArgumentFunc {
	return func(options Options) {
		options[OptionDefaultValue.Key()] = value
	}
}
