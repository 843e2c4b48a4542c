package encode

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a double-quoted string literal valid in both JSON and
// YAML: control characters escaped, non-ASCII passed through.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// NeedsQuote reports whether v must be quoted in YAML output to decode back
// to the same string: empty strings, strings a YAML parser would type as
// null/bool/number, leading or trailing whitespace, and strings containing
// indicator or control characters.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	switch v[0] {
	case '*', '&', '%', '@', ':', '#', ',', '{', '}', '[', ']', '(', '-',
		'?', '!', '|', '>', '\'', '"', '`', ' ':
		return true
	}
	if strings.ContainsAny(v, ":#\n\r\t{}[],") {
		return true
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return looksTyped(v)
}

// looksTyped reports whether a YAML parser would give a plain scalar v a
// non-string type.
func looksTyped(v string) bool {
	switch strings.ToLower(v) {
	case "null", "~", "true", "false", "yes", "no", "on", "off",
		".inf", "-.inf", "+.inf", ".nan":
		return true
	}
	if _, err := strconv.ParseInt(v, 0, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	return false
}
