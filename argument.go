package gocli

import (
	"math"
	"strconv"
	"strings"

	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/internal/util"
	"github.com/napalu/gocli/types"
)

// Argument describes a positional or prefixed command-line argument. Its
// declaration is fixed at construction; only the parsed value changes.
type Argument struct {
	name         string
	description  string
	required     bool
	noValue      bool
	prefix       string
	longPrefix   string
	castTo       types.CastType
	defaultValue any

	value   any
	handled bool
}

// NewArgument builds an Argument from an Options map. Unknown keys and values of
// the wrong type are ignored. Use NewArg to configure an Argument with option
// functions instead.
func NewArgument(name string, options Options) (*Argument, error) {
	if name == "" {
		return nil, errs.ErrMissingName
	}

	c := options.fold()

	castTo, result := types.ParseCastType(c.castTo)
	switch result {
	case types.CastBool:
		return nil, errs.ErrCastToBool
	case types.CastUnknown:
		return nil, errs.ErrUnknownCastType.WithArgs(c.castTo)
	}

	if c.hasDefault && !castTo.Matches(c.defaultValue) {
		return nil, errs.ErrDefaultTypeMismatch.WithArgs(castTo)
	}
	if c.hasDefault && (c.required || c.noValue) {
		return nil, errs.ErrDefaultNotAllowed
	}
	if c.required && (c.prefix != "" || c.longPrefix != "") {
		return nil, errs.ErrPrefixedRequired
	}

	return &Argument{
		name:         name,
		description:  c.description,
		required:     c.required,
		noValue:      c.noValue,
		prefix:       c.prefix,
		longPrefix:   c.longPrefix,
		castTo:       castTo,
		defaultValue: c.defaultValue,
	}, nil
}

func (a *Argument) Name() string {
	return a.name
}

func (a *Argument) Description() string {
	return a.description
}

func (a *Argument) IsRequired() bool {
	return a.required
}

// HasNoValue reports whether the argument is a presence flag
func (a *Argument) HasNoValue() bool {
	return a.noValue
}

func (a *Argument) Prefix() string {
	return a.prefix
}

func (a *Argument) LongPrefix() string {
	return a.longPrefix
}

// IsPrefixed reports whether the argument has a short or long prefix
func (a *Argument) IsPrefixed() bool {
	return a.prefix != "" || a.longPrefix != ""
}

func (a *Argument) CastTo() types.CastType {
	return a.castTo
}

// DefaultValue returns the declared default, or nil
func (a *Argument) DefaultValue() any {
	return a.defaultValue
}

// HasBeenHandled reports whether a value was assigned since the last reset
func (a *Argument) HasBeenHandled() bool {
	return a.handled
}

// Value returns the parsed value if the argument was handled. Otherwise a
// noValue argument yields false and any other argument its default value.
func (a *Argument) Value() any {
	switch {
	case a.handled:
		return a.value
	case a.noValue:
		return false
	default:
		return a.defaultValue
	}
}

// SetValueParsed converts raw according to the argument's declaration and
// stores it. raw is a bool for noValue arguments and a string otherwise.
func (a *Argument) SetValueParsed(raw any) error {
	if a.noValue {
		b, ok := raw.(bool)
		if !ok {
			return errs.ErrNoValueArgument.WithArgs(a.name)
		}
		a.set(b)
		return nil
	}

	s, ok := raw.(string)
	if !ok {
		return errs.ErrUnexpectedBool.WithArgs(a.name)
	}

	switch a.castTo {
	case types.CastInteger:
		n, ok := util.ParseNumeric(s)
		if !ok {
			return errs.ErrNotInteger.WithArgs(a.name)
		}
		i, ok := util.TruncateToInt(n)
		if !ok {
			return errs.ErrNotInteger.WithArgs(a.name)
		}
		a.set(i)
	case types.CastFloat:
		n, ok := util.ParseNumeric(s)
		if !ok || strings.Contains(s, ",") || math.IsInf(n.Float, 0) {
			return errs.ErrNotFloat.WithArgs(a.name)
		}
		a.set(n.Float)
	default:
		a.set(s)
	}

	return nil
}

// Infos returns the usage line of the argument, e.g.
//
//	test -t=test, --longtest=test (type: integer) (default: 12)
//	  Test description
func (a *Argument) Infos() string {
	var sb strings.Builder
	sb.WriteString(a.name)

	flags := make([]string, 0, 2)
	if a.prefix != "" {
		flags = append(flags, a.flagUsage("-", a.prefix))
	}
	if a.longPrefix != "" {
		flags = append(flags, a.flagUsage("--", a.longPrefix))
	}
	if len(flags) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(flags, ", "))
	}

	if !a.noValue {
		sb.WriteString(" (type: ")
		sb.WriteString(a.castTo.String())
		sb.WriteString(")")
	}

	if d, ok := formatDefault(a.defaultValue); ok {
		sb.WriteString(" (default: ")
		sb.WriteString(d)
		sb.WriteString(")")
	}

	if a.description != "" {
		sb.WriteString("\n\t  ")
		sb.WriteString(a.description)
	}

	return sb.String()
}

func (a *Argument) String() string {
	return a.Infos()
}

func (a *Argument) flagUsage(dashes, flag string) string {
	if a.noValue {
		return dashes + flag
	}
	return dashes + flag + "=" + a.name
}

func (a *Argument) set(v any) {
	a.value = v
	a.handled = true
}

func (a *Argument) reset() {
	a.value = nil
	a.handled = false
}

// formatDefault renders a default value, reporting false for values that are
// not worth showing ("", "0", 0 and 0.0).
func formatDefault(v any) (string, bool) {
	switch d := v.(type) {
	case string:
		return d, d != "" && d != "0"
	case int:
		return strconv.Itoa(d), d != 0
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64), d != 0
	}
	return "", false
}
