// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package gocli provides declarative parsing of positional and prefixed
// command-line arguments.
//
// An Argument is either:
//
//	positional - filled from the remaining tokens in declaration order
//	prefixed   - filled from a -p=value or --prefix=value token
//	noValue    - a prefixed presence flag which evaluates to true when given
//
// Required arguments are always positional and must be declared before any
// optional positional argument. Values are cast to string, integer or float.
package gocli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/i18n"
	"github.com/napalu/gocli/parse"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"
)

// Arguments is an ordered collection of Argument values and the engine which
// fills them from command-line tokens.
type Arguments struct {
	args     *orderedmap.OrderedMap[string, *Argument]
	stdout   io.Writer
	logger   *log.Logger
	renderer Renderer
	lang     language.Tag
}

// New returns a collection holding args in the given order. It fails when a
// required positional argument follows an optional one.
func New(args ...*Argument) (*Arguments, error) {
	a := newArguments()
	for _, arg := range args {
		a.args.Set(arg.Name(), arg)
	}

	if err := a.checkRequiredOrder(); err != nil {
		return nil, err
	}

	return a, nil
}

func newArguments() *Arguments {
	return &Arguments{
		args:     orderedmap.New[string, *Argument](),
		stdout:   os.Stdout,
		logger:   log.New(io.Discard),
		renderer: NewRenderer(i18n.Default()),
		lang:     language.English,
	}
}

// Set inserts arg or replaces the argument of the same name in place. When the
// result would break the required argument ordering the collection is left
// unchanged and an error is returned.
func (a *Arguments) Set(arg *Argument) error {
	previous, replaced := a.args.Set(arg.Name(), arg)
	if err := a.checkRequiredOrder(); err != nil {
		if replaced {
			a.args.Set(arg.Name(), previous)
		} else {
			a.args.Delete(arg.Name())
		}
		return err
	}

	return nil
}

// Get returns the resolved value of the named argument: the parsed value, or
// the default value (false for noValue arguments) when it was not given.
func (a *Arguments) Get(name string) (any, error) {
	arg, found := a.args.Get(name)
	if !found {
		return nil, errs.ErrArgumentNotFound.WithArgs(name)
	}

	return arg.Value(), nil
}

// GetString returns the value of a string argument
func (a *Arguments) GetString(name string) (string, error) {
	return getAs[string](a, name, "string")
}

// GetInt returns the value of an integer argument
func (a *Arguments) GetInt(name string) (int, error) {
	return getAs[int](a, name, "integer")
}

// GetFloat returns the value of a float argument
func (a *Arguments) GetFloat(name string) (float64, error) {
	return getAs[float64](a, name, "float")
}

// GetBool returns the value of a noValue argument
func (a *Arguments) GetBool(name string) (bool, error) {
	return getAs[bool](a, name, "bool")
}

func getAs[T any](a *Arguments, name, typeName string) (T, error) {
	var zero T
	v, err := a.Get(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errs.ErrValueType.WithArgs(name, typeName)
	}

	return t, nil
}

// Argument returns the named argument
func (a *Arguments) Argument(name string) (*Argument, bool) {
	return a.args.Get(name)
}

// Remove deletes the named argument and reports whether it was present
func (a *Arguments) Remove(name string) bool {
	_, found := a.args.Delete(name)
	return found
}

func (a *Arguments) Count() int {
	return a.args.Len()
}

// Names returns the argument names in collection order
func (a *Arguments) Names() []string {
	names := make([]string, 0, a.args.Len())
	for p := a.args.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Each calls fn for every argument in collection order until fn returns false
func (a *Arguments) Each(fn func(name string, arg *Argument) bool) {
	for p := a.args.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Required returns a collection of the required arguments, in order. The
// arguments are shared with a.
func (a *Arguments) Required() *Arguments {
	r := a.derive()
	a.Each(func(name string, arg *Argument) bool {
		if arg.IsRequired() {
			r.args.Set(name, arg)
		}
		return true
	})
	return r
}

// Optional returns a collection of the arguments which are not required
func (a *Arguments) Optional() *Arguments {
	o := a.derive()
	a.Each(func(name string, arg *Argument) bool {
		if !arg.IsRequired() {
			o.args.Set(name, arg)
		}
		return true
	})
	return o
}

// Parse fills the arguments from tokens, typically os.Args[1:].
//
// Prefixed tokens are matched first. Required arguments then take the next
// unused tokens in order, and the optional positional arguments take whatever
// remains. Tokens left over once every argument is filled are ignored. Values
// assigned before a failure are kept.
func (a *Arguments) Parse(tokens ...string) error {
	if a.args.Len() == 0 {
		return nil
	}

	a.Reset()
	stream := parse.NewStream(tokens)

	if err := a.parsePrefixed(stream); err != nil {
		return err
	}
	if err := a.parseRequired(stream); err != nil {
		return err
	}
	if err := a.parsePositional(stream); err != nil {
		return err
	}

	if rest := stream.Remaining(); len(rest) > 0 {
		a.logger.Debug("unused tokens", "tokens", rest)
	}

	return nil
}

// ParseString splits line with shell quoting rules and calls Parse
func (a *Arguments) ParseString(line string) error {
	tokens, err := parse.Split(line)
	if err != nil {
		return errs.ErrSplit.Wrap(err)
	}

	return a.Parse(tokens...)
}

// Reset forgets the values assigned by a previous Parse
func (a *Arguments) Reset() {
	a.Each(func(_ string, arg *Argument) bool {
		arg.reset()
		return true
	})
}

// Usage returns the listing of required then optional arguments
func (a *Arguments) Usage() string {
	return a.renderer.Usage(a)
}

// PrintArguments writes Usage to the configured output
func (a *Arguments) PrintArguments() {
	_, _ = io.WriteString(a.stdout, a.Usage())
}

// SetStdout sets the writer used by PrintArguments
func (a *Arguments) SetStdout(w io.Writer) {
	a.stdout = w
}

// SetLogger sets the logger receiving parse traces at debug level
func (a *Arguments) SetLogger(logger *log.Logger) {
	a.logger = logger
}

// SetLanguage selects the language of usage headings
func (a *Arguments) SetLanguage(lang language.Tag) {
	a.lang = lang
}

func (a *Arguments) Language() language.Tag {
	return a.lang
}

func (a *Arguments) SetRenderer(r Renderer) {
	a.renderer = r
}
