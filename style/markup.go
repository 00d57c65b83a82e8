package style

import (
	"strings"
)

// Render replaces every <tag>text</tag> pair of markup with text styled by the
// tag. Tag names are fg or bg followed by a colour name (fgred, bglightgray) or
// an attribute (b, bold, u, strike...). Pairs must close with the same name and
// cannot span lines; tags inside a pair are not interpreted. Pairs with an
// unknown name are left as written and their names returned.
func Render(markup string) (string, []string) {
	return render(markup, true)
}

// Strip is like Render but keeps only the text of recognised pairs
func Strip(markup string) (string, []string) {
	return render(markup, false)
}

func render(markup string, colors bool) (string, []string) {
	var (
		sb      strings.Builder
		unknown []string
	)

	rest := markup
	for {
		m, ok := nextPair(rest)
		if !ok {
			sb.WriteString(rest)
			break
		}

		sb.WriteString(rest[:m.start])
		styled, known := styleTag(m.name, m.inner, colors)
		if known {
			sb.WriteString(styled)
		} else {
			sb.WriteString(rest[m.start:m.end])
			unknown = append(unknown, m.name)
		}
		rest = rest[m.end:]
	}

	return sb.String(), unknown
}

type pair struct {
	start, end int
	name       string
	inner      string
}

// nextPair finds the first <name ...>inner</name> in s. name is made of word
// characters and inner is the shortest text without a line break that is
// followed by the closing tag. When the word after '<' does not close, shorter
// names are tried since the remaining characters may belong to the attributes.
func nextPair(s string) (pair, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}

		wordEnd := i + 1
		for wordEnd < len(s) && isWordChar(s[wordEnd]) {
			wordEnd++
		}
		if wordEnd == i+1 {
			continue
		}

		gt := strings.IndexByte(s[wordEnd:], '>')
		if gt < 0 {
			continue
		}
		innerStart := wordEnd + gt + 1

		line := s[innerStart:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}

		for nameEnd := wordEnd; nameEnd > i+1; nameEnd-- {
			name := s[i+1 : nameEnd]
			closing := "</" + name + ">"
			if idx := strings.Index(line, closing); idx >= 0 {
				return pair{
					start: i,
					end:   innerStart + idx + len(closing),
					name:  name,
					inner: line[:idx],
				}, true
			}
		}
	}

	return pair{}, false
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func styleTag(name, inner string, colors bool) (string, bool) {
	var opt Option
	switch {
	case strings.HasPrefix(name, "fg"):
		fg, ok := ForegroundFromTag(name)
		if !ok {
			return "", false
		}
		opt = WithForeground(fg)
	case strings.HasPrefix(name, "bg"):
		bg, ok := BackgroundFromTag(name)
		if !ok {
			return "", false
		}
		opt = WithBackground(bg)
	default:
		at, ok := AttributeFromTag(name)
		if !ok {
			return "", false
		}
		opt = WithAttribute(at)
	}

	if !colors {
		return inner, true
	}
	return Stylize(inner, opt), true
}
