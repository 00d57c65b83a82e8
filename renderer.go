package gocli

import (
	"strings"

	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/i18n"
)

// Renderer produces the usage listing of a collection
type Renderer interface {
	// ArgumentUsage returns the entry of one argument
	ArgumentUsage(arg *Argument) string
	// Usage returns the listing of every argument in args
	Usage(args *Arguments) string
}

// DefaultRenderer lists required arguments then optional ones under
// translated headings
type DefaultRenderer struct {
	bundle *i18n.Bundle
}

func NewRenderer(bundle *i18n.Bundle) *DefaultRenderer {
	return &DefaultRenderer{bundle: bundle}
}

func (r *DefaultRenderer) ArgumentUsage(arg *Argument) string {
	return "\n\t" + arg.Infos()
}

// Usage returns
//
//	Required arguments:
//		name (type: string)
//
//	Optional arguments:
//		count (type: integer) (default: 10)
//
// A section without arguments is left out and an empty collection yields "".
func (r *DefaultRenderer) Usage(args *Arguments) string {
	var sb strings.Builder

	if required := args.Required(); required.Count() > 0 {
		sb.WriteString(r.bundle.TL(args.Language(), errs.RequiredArgumentsKey))
		r.writeEntries(&sb, required)
	}

	if optional := args.Optional(); optional.Count() > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(r.bundle.TL(args.Language(), errs.OptionalArgumentsKey))
		r.writeEntries(&sb, optional)
	}

	return sb.String()
}

func (r *DefaultRenderer) writeEntries(sb *strings.Builder, args *Arguments) {
	args.Each(func(_ string, arg *Argument) bool {
		sb.WriteString(r.ArgumentUsage(arg))
		return true
	})
}
