package gocli

import (
	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/parse"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// derive returns an empty collection sharing a's output settings
func (a *Arguments) derive() *Arguments {
	return &Arguments{
		args:     orderedmap.New[string, *Argument](),
		stdout:   a.stdout,
		logger:   a.logger,
		renderer: a.renderer,
		lang:     a.lang,
	}
}

// checkRequiredOrder ensures no required argument follows an optional
// positional argument. Prefixed arguments are skipped.
func (a *Arguments) checkRequiredOrder() error {
	var err error
	optionalSeen := false
	a.Each(func(name string, arg *Argument) bool {
		if arg.IsPrefixed() {
			return true
		}
		if !arg.IsRequired() {
			optionalSeen = true
			return true
		}
		if optionalSeen {
			err = errs.ErrRequiredOrder.WithArgs(name)
			return false
		}
		return true
	})

	return err
}

// findByFlag returns the first argument whose short or long prefix is f's key
func (a *Arguments) findByFlag(f parse.Flag) *Argument {
	if f.Key == "" {
		return nil
	}

	var found *Argument
	a.Each(func(_ string, arg *Argument) bool {
		prefix := arg.Prefix()
		if f.IsLong() {
			prefix = arg.LongPrefix()
		}
		if prefix == f.Key {
			found = arg
			return false
		}
		return true
	})

	return found
}

func (a *Arguments) parsePrefixed(stream *parse.Stream) error {
	for i := 0; i < stream.Len(); i++ {
		f, ok := parse.ParseFlag(stream.At(i))
		if !ok {
			continue
		}

		arg := a.findByFlag(f)
		if arg == nil {
			a.logger.Debug("no argument for flag, keeping token", "phase", "prefix", "token", stream.At(i))
			continue
		}

		if arg.HasNoValue() {
			if err := arg.SetValueParsed(true); err != nil {
				return err
			}
		} else {
			if !f.HasValue {
				return errs.ErrMissingEqualSign.WithArgs(f.Dashes, f.Key)
			}
			if err := arg.SetValueParsed(f.Value); err != nil {
				return err
			}
		}

		stream.Consume(i)
		a.logger.Debug("flag matched", "phase", "prefix", "token", stream.At(i), "argument", arg.Name())
	}

	return nil
}

func (a *Arguments) parseRequired(stream *parse.Stream) error {
	var err error
	stream.Rewind()
	a.Each(func(name string, arg *Argument) bool {
		if !arg.IsRequired() {
			return true
		}

		tok, ok := stream.Next()
		if !ok {
			err = errs.ErrArgumentRequired.WithArgs(name)
			return false
		}
		if err = arg.SetValueParsed(tok); err != nil {
			return false
		}

		a.logger.Debug("required argument set", "phase", "required", "token", tok, "argument", name)
		return true
	})

	return err
}

func (a *Arguments) parsePositional(stream *parse.Stream) error {
	var err error
	a.Each(func(name string, arg *Argument) bool {
		if arg.HasBeenHandled() || arg.IsPrefixed() {
			return true
		}

		tok, ok := stream.Next()
		if !ok {
			return false
		}
		if err = arg.SetValueParsed(tok); err != nil {
			return false
		}

		a.logger.Debug("positional argument set", "phase", "positional", "token", tok, "argument", name)
		return true
	})

	return err
}
