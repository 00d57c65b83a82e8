package declare

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/gocli"
	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
arguments:
  - name: source
    required: true
    description: file to read
  - name: count
    cast_to: integer
    default_value: 10
  - name: ratio
    castTo: float
    defaultValue: 0.5
  - name: verbose
    prefix: v
    long-prefix: verbose
    no_value: true
`

const tomlDoc = `
[[arguments]]
name = "source"
required = true
description = "file to read"

[[arguments]]
name = "count"
cast_to = "integer"
default_value = 10

[[arguments]]
name = "ratio"
castTo = "float"
defaultValue = 0.5

[[arguments]]
name = "verbose"
prefix = "v"
long-prefix = "verbose"
no_value = true
`

func names(args []*gocli.Argument) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg.Name()
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		decode func() ([]*gocli.Argument, error)
	}{
		{"yaml", func() ([]*gocli.Argument, error) { return FromYAML(strings.NewReader(yamlDoc)) }},
		{"toml", func() ([]*gocli.Argument, error) { return FromTOML(strings.NewReader(tomlDoc)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tt.decode()
			require.NoError(t, err)

			if diff := cmp.Diff([]string{"source", "count", "ratio", "verbose"}, names(args)); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}

			assert.True(t, args[0].IsRequired())
			assert.Equal(t, "file to read", args[0].Description())

			assert.Equal(t, types.CastInteger, args[1].CastTo())
			assert.Equal(t, 10, args[1].DefaultValue())

			assert.Equal(t, types.CastFloat, args[2].CastTo())
			assert.Equal(t, 0.5, args[2].DefaultValue())

			assert.Equal(t, "v", args[3].Prefix())
			assert.Equal(t, "verbose", args[3].LongPrefix())
			assert.True(t, args[3].HasNoValue())
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	args, err := FromYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = FromTOML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		decode  func() ([]*gocli.Argument, error)
		wantErr error
	}{
		{"invalid yaml", func() ([]*gocli.Argument, error) {
			return FromYAML(strings.NewReader("arguments: [name: x"))
		}, errs.ErrDecode},
		{"invalid toml", func() ([]*gocli.Argument, error) {
			return FromTOML(strings.NewReader("[[arguments]\nname ="))
		}, errs.ErrDecode},
		{"missing name", func() ([]*gocli.Argument, error) {
			return FromYAML(strings.NewReader("arguments:\n  - required: true\n"))
		}, errs.ErrMissingName},
		{"invalid declaration", func() ([]*gocli.Argument, error) {
			return FromTOML(strings.NewReader("[[arguments]]\nname = \"x\"\ncast_to = \"bool\"\n"))
		}, errs.ErrCastToBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tt.decode()
			assert.Nil(t, args)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errs.IsConfigError(err))
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	for _, file := range []string{write("args.yaml", yamlDoc), write("args.YML", yamlDoc), write("args.toml", tomlDoc)} {
		args, err := FromFile(file)
		require.NoError(t, err, file)
		assert.Len(t, args, 4)
	}

	_, err := FromFile(write("args.json", "{}"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `".json"`)

	_, err = FromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, errs.ErrDecode)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	a, err := gocli.New(
		gocli.MustArg("source", gocli.SetRequired(true)),
		gocli.MustArg("count", gocli.WithCastTo(types.CastInteger), gocli.WithDefaultValue(1)),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "extra.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[arguments]]
name = "count"
cast_to = "integer"
default_value = 5

[[arguments]]
name = "level"
long_prefix = "level"
`), 0o600))

	require.NoError(t, Merge(a, path))
	assert.Equal(t, []string{"source", "count", "level"}, a.Names())

	require.NoError(t, a.Parse("in.txt", "--level=debug"))
	count, err := a.GetInt("count")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	level, err := a.GetString("level")
	require.NoError(t, err)
	assert.Equal(t, "debug", level)
}

func TestMerge_RejectsOrderViolation(t *testing.T) {
	a, err := gocli.New(gocli.MustArg("source"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arguments:\n  - name: target\n    required: true\n"), 0o600))

	assert.ErrorIs(t, Merge(a, path), errs.ErrRequiredOrder)
	assert.Equal(t, []string{"source"}, a.Names())
}
