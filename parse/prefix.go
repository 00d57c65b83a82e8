package parse

import "strings"

const (
	shortDash = "-"
	longDash  = "--"
)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Flag is a token of the form -key[=value] or --key[=value]
type Flag struct {
	Dashes   string
	Key      string
	Value    string
	HasValue bool
}

// ParseFlag classifies token. Every single and double quote is removed before
// the key and value are split on the first '='. It returns false when token
// does not start with a dash.
func ParseFlag(token string) (Flag, bool) {
	if !strings.HasPrefix(token, shortDash) {
		return Flag{}, false
	}

	body := quoteStripper.Replace(token)
	f := Flag{Dashes: shortDash}
	if strings.HasPrefix(body, longDash) {
		f.Dashes = longDash
	}
	body = strings.TrimPrefix(body, f.Dashes)

	f.Key, f.Value, f.HasValue = strings.Cut(body, "=")

	return f, true
}

// IsLong reports whether the flag was written with two dashes
func (f Flag) IsLong() bool {
	return f.Dashes == longDash
}

// String returns the dashes followed by the key
func (f Flag) String() string {
	return f.Dashes + f.Key
}
