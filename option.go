package gocli

// Option is one of the recognised keys of an argument declaration
type Option int

const (
	OptionDescription Option = iota
	OptionRequired
	OptionNoValue
	OptionPrefix
	OptionLongPrefix
	OptionCastTo
	OptionDefaultValue
)

var optionKeys = [...]string{
	OptionDescription:  "description",
	OptionRequired:     "required",
	OptionNoValue:      "noValue",
	OptionPrefix:       "prefix",
	OptionLongPrefix:   "longPrefix",
	OptionCastTo:       "castTo",
	OptionDefaultValue: "defaultValue",
}

// Options maps option keys to their values, e.g.
//
//	Options{"prefix": "t", "castTo": "integer", "defaultValue": 12}
type Options map[string]any

// AllOptions returns every Option in declaration order
func AllOptions() []Option {
	all := make([]Option, len(optionKeys))
	for i := range optionKeys {
		all[i] = Option(i)
	}
	return all
}

// ParseOption returns the Option whose key is key
func ParseOption(key string) (Option, bool) {
	for i, k := range optionKeys {
		if k == key {
			return Option(i), true
		}
	}
	return 0, false
}

// Key returns the key used for the option in Options
func (o Option) Key() string {
	if o < 0 || int(o) >= len(optionKeys) {
		return ""
	}
	return optionKeys[o]
}

func (o Option) String() string {
	return o.Key()
}

// VerifiesType reports whether v has the type the option expects
func (o Option) VerifiesType(v any) bool {
	switch o {
	case OptionRequired, OptionNoValue:
		_, ok := v.(bool)
		return ok
	case OptionDescription, OptionPrefix, OptionLongPrefix, OptionCastTo:
		_, ok := v.(string)
		return ok
	case OptionDefaultValue:
		switch v.(type) {
		case string, int, float64:
			return true
		}
	}
	return false
}

// argumentConfig is the result of folding Options before validation
type argumentConfig struct {
	description  string
	required     bool
	noValue      bool
	prefix       string
	longPrefix   string
	castTo       string
	defaultValue any
	hasDefault   bool
}

func (o Option) apply(c *argumentConfig, v any) {
	switch o {
	case OptionDescription:
		c.description = v.(string)
	case OptionRequired:
		c.required = v.(bool)
	case OptionNoValue:
		c.noValue = v.(bool)
	case OptionPrefix:
		c.prefix = v.(string)
	case OptionLongPrefix:
		c.longPrefix = v.(string)
	case OptionCastTo:
		c.castTo = v.(string)
	case OptionDefaultValue:
		c.defaultValue = v
		c.hasDefault = true
	}
}

// fold keeps the recognised, well-typed entries of opts
func (opts Options) fold() argumentConfig {
	c := argumentConfig{castTo: "string"}
	for key, v := range opts {
		o, ok := ParseOption(key)
		if !ok || !o.VerifiesType(v) {
			continue
		}
		o.apply(&c, v)
	}
	return c
}
