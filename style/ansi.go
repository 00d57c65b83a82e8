// Package style formats terminal output with ANSI escape sequences.
package style

import "strings"

const (
	StartTag = "\x1b["
	EndTag   = "\x1b[0m"
)

// Foreground is the ANSI code of a text colour
type Foreground string

const (
	FgBlack       Foreground = "0;30"
	FgDarkGray    Foreground = "1;30"
	FgRed         Foreground = "0;31"
	FgLightRed    Foreground = "1;31"
	FgGreen       Foreground = "0;32"
	FgLightGreen  Foreground = "1;32"
	FgBrown       Foreground = "0;33"
	FgYellow      Foreground = "1;33"
	FgBlue        Foreground = "0;34"
	FgLightBlue   Foreground = "1;34"
	FgPurple      Foreground = "0;35"
	FgLightPurple Foreground = "1;35"
	FgCyan        Foreground = "0;36"
	FgLightCyan   Foreground = "1;36"
	FgLightGray   Foreground = "0;37"
	FgWhite       Foreground = "1;37"
)

var foregroundNames = map[Foreground]string{
	FgBlack:       "black",
	FgDarkGray:    "darkgray",
	FgRed:         "red",
	FgLightRed:    "lightred",
	FgGreen:       "green",
	FgLightGreen:  "lightgreen",
	FgBrown:       "brown",
	FgYellow:      "yellow",
	FgBlue:        "blue",
	FgLightBlue:   "lightblue",
	FgPurple:      "purple",
	FgLightPurple: "lightpurple",
	FgCyan:        "cyan",
	FgLightCyan:   "lightcyan",
	FgLightGray:   "lightgray",
	FgWhite:       "white",
}

// Background is the ANSI code of a background colour
type Background string

const (
	BgBlack     Background = "40"
	BgRed       Background = "41"
	BgGreen     Background = "42"
	BgYellow    Background = "43"
	BgBlue      Background = "44"
	BgMagenta   Background = "45"
	BgCyan      Background = "46"
	BgLightGray Background = "47"
)

var backgroundNames = map[Background]string{
	BgBlack:     "black",
	BgRed:       "red",
	BgGreen:     "green",
	BgYellow:    "yellow",
	BgBlue:      "blue",
	BgMagenta:   "magenta",
	BgCyan:      "cyan",
	BgLightGray: "lightgray",
}

// Attribute is the ANSI code of a text attribute
type Attribute string

const (
	AttrNormal    Attribute = "0"
	AttrBold      Attribute = "1"
	AttrItalic    Attribute = "3"
	AttrUnderline Attribute = "4"
	AttrBlink     Attribute = "5"
	AttrOutline   Attribute = "6"
	AttrReverse   Attribute = "7"
	AttrNonDisp   Attribute = "8"
	AttrStrike    Attribute = "9"
)

var attributeTags = map[string]Attribute{
	"normal":    AttrNormal,
	"b":         AttrBold,
	"bold":      AttrBold,
	"i":         AttrItalic,
	"italic":    AttrItalic,
	"u":         AttrUnderline,
	"underline": AttrUnderline,
	"blink":     AttrBlink,
	"outline":   AttrOutline,
	"reverse":   AttrReverse,
	"nondisp":   AttrNonDisp,
	"strike":    AttrStrike,
}

var attributeShortTags = map[Attribute]string{
	AttrNormal:    "normal",
	AttrBold:      "b",
	AttrItalic:    "i",
	AttrUnderline: "u",
	AttrBlink:     "blink",
	AttrOutline:   "outline",
	AttrReverse:   "reverse",
	AttrNonDisp:   "nondisp",
	AttrStrike:    "strike",
}

func (f Foreground) Code() string {
	return string(f)
}

// Tag returns the markup tag name of the colour, e.g. fglightpurple
func (f Foreground) Tag() string {
	if name, ok := foregroundNames[f]; ok {
		return "fg" + name
	}
	return ""
}

// ForegroundFromTag returns the colour of a tag such as fgred
func ForegroundFromTag(tag string) (Foreground, bool) {
	name, found := strings.CutPrefix(strings.ToLower(tag), "fg")
	if !found {
		return "", false
	}
	for fg, n := range foregroundNames {
		if n == name {
			return fg, true
		}
	}
	return "", false
}

func (b Background) Code() string {
	return string(b)
}

// Tag returns the markup tag name of the colour, e.g. bgred
func (b Background) Tag() string {
	if name, ok := backgroundNames[b]; ok {
		return "bg" + name
	}
	return ""
}

// BackgroundFromTag returns the colour of a tag such as bgcyan
func BackgroundFromTag(tag string) (Background, bool) {
	name, found := strings.CutPrefix(strings.ToLower(tag), "bg")
	if !found {
		return "", false
	}
	for bg, n := range backgroundNames {
		if n == name {
			return bg, true
		}
	}
	return "", false
}

func (a Attribute) Code() string {
	return string(a)
}

// Tag returns the short markup tag name of the attribute, e.g. b for bold
func (a Attribute) Tag() string {
	return attributeShortTags[a]
}

// AttributeFromTag returns the attribute of a tag such as b or underline
func AttributeFromTag(tag string) (Attribute, bool) {
	a, ok := attributeTags[strings.ToLower(tag)]
	return a, ok
}

func sequence(code string) string {
	return StartTag + code + "m"
}
