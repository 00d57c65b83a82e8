package gocli

import (
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// ConfigureArgumentsFunc configures a collection created by NewWith
type ConfigureArgumentsFunc func(args *Arguments, err *error)

// NewWith allows initialization of Arguments using option functions. The caller should always test for error on
// return because Arguments will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	args, err := NewWith(
//		WithArgument(MustArg("source",
//			SetRequired(true),
//			WithDescription("file to read"))),
//		WithArgument(MustArg("count",
//			WithCastTo(types.CastInteger),
//			WithDefaultValue(10))),
//		WithArgument(MustArg("verbose",
//			WithPrefix("v"),
//			WithLongPrefix("verbose"),
//			SetNoValue(true))),
//		WithStdout(os.Stderr))
func NewWith(configs ...ConfigureArgumentsFunc) (*Arguments, error) {
	args := newArguments()

	var err error
	for _, config := range configs {
		config(args, &err)
		if err != nil {
			return nil, err
		}
	}

	return args, nil
}

// WithArgument is a wrapper for Set
func WithArgument(arg *Argument) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		*err = args.Set(arg)
	}
}

// WithDeclaration builds an Argument from an Options map and adds it
func WithDeclaration(name string, options Options) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		var arg *Argument
		if arg, *err = NewArgument(name, options); *err != nil {
			return
		}
		*err = args.Set(arg)
	}
}

func WithStdout(w io.Writer) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		args.SetStdout(w)
	}
}

func WithLogger(logger *log.Logger) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		args.SetLogger(logger)
	}
}

func WithLanguage(lang language.Tag) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		args.SetLanguage(lang)
	}
}

func WithRenderer(r Renderer) ConfigureArgumentsFunc {
	return func(args *Arguments, err *error) {
		args.SetRenderer(r)
	}
}
