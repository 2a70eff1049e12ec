package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]string{
	'b': "\b",
	'f': "\f",
	'n': "\n",
	'r': "\r",
	't': "\t",
	'v': "\v",
	'0': "\x00",
}

// decodeEscape returns the text a JavaScript escape sequence stands for: `\'` is a
// quote, `\x41` and `\u{41}` are "A". A line continuation decodes to nothing;
// a malformed hex escape is kept as written.
func decodeEscape(seq []byte) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return string(seq)
	}
	body := seq[1:]

	switch body[0] {
	case '\n', '\r':
		return ""
	case 'x':
		if r, ok := hexRune(string(body[1:])); ok {
			return string(r)
		}
	case 'u':
		hex := strings.TrimSuffix(strings.TrimPrefix(string(body[1:]), "{"), "}")
		if r, ok := hexRune(hex); ok {
			return string(r)
		}
	default:
		if s, ok := simpleEscapes[body[0]]; ok && len(body) == 1 {
			return s
		}
		return string(body)
	}
	return string(seq)
}

func hexRune(hex string) (rune, bool) {
	if hex == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, false
	}
	return rune(n), true
}
