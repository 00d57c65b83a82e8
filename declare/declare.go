// Package declare builds argument declarations from YAML or TOML documents.
//
// A document holds an ordered list of declarations under "arguments". Option
// keys may be written in camel, snake or kebab case:
//
//	arguments:
//	  - name: source
//	    required: true
//	  - name: count
//	    cast_to: integer
//	    default_value: 10
//	  - name: verbose
//	    prefix: v
//	    no-value: true
package declare

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
	"github.com/napalu/gocli"
	"github.com/napalu/gocli/errs"
	"gopkg.in/yaml.v3"
)

const nameKey = "name"

type document struct {
	Arguments []map[string]any `yaml:"arguments" toml:"arguments"`
}

// FromYAML decodes the declarations of a YAML document
func FromYAML(r io.Reader) ([]*gocli.Argument, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.ErrDecode.Wrap(err)
	}

	return FromMaps(doc.Arguments)
}

// FromTOML decodes the declarations of a TOML document
func FromTOML(r io.Reader) ([]*gocli.Argument, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.ErrDecode.Wrap(err)
	}

	return FromMaps(doc.Arguments)
}

// FromFile decodes the file at path, choosing the format from its extension
func FromFile(path string) ([]*gocli.Argument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrDecode.Wrap(err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FromYAML(bytes.NewReader(data))
	case ".toml":
		return FromTOML(bytes.NewReader(data))
	default:
		return nil, errs.ErrUnsupportedFormat.WithArgs(ext)
	}
}

// FromMaps builds one Argument per declaration, keeping their order. Every
// declaration needs a non-empty "name".
func FromMaps(decls []map[string]any) ([]*gocli.Argument, error) {
	args := make([]*gocli.Argument, 0, len(decls))
	for _, decl := range decls {
		name, options := normalize(decl)
		if name == "" {
			return nil, errs.ErrMissingName
		}

		arg, err := gocli.NewArgument(name, options)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}

// Merge adds the declarations of the file at path to a, replacing arguments
// of the same name in place.
func Merge(a *gocli.Arguments, path string) error {
	args, err := FromFile(path)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := a.Set(arg); err != nil {
			return err
		}
	}

	return nil
}

func normalize(decl map[string]any) (string, gocli.Options) {
	var name string
	options := make(gocli.Options, len(decl))
	for k, v := range decl {
		key := strcase.ToLowerCamel(k)
		if key == nameKey {
			name, _ = v.(string)
			continue
		}
		options[key] = normalizeValue(v)
	}

	return name, options
}

// normalizeValue maps decoder integer types onto int, the only integer type
// a declaration accepts.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int32:
		return int(n)
	case uint64:
		return int(n)
	default:
		return v
	}
}
