package assembler

import (
	"regexp"
	"strconv"
	"unicode"

	"github.com/inkwell-systems/luinux/lerr"
)

var (
	hexLiteralRe     = regexp.MustCompile(`^h'[0-9a-fA-F]+$`)
	decimalLiteralRe = regexp.MustCompile(`^-?[0-9]+$`)
)

// parseLiteral resolves one operand token to its 16-bit value: a hex
// literal (h'dead), a decimal literal (-?[0-9]+, stored two's-complement
// on negative input), or a label reference looked up in symbols.
//
// A token that starts with a digit, '-', or "h'" but doesn't fully match
// either numeric grammar is a malformed literal, not a label: "0xdead",
// "10.1", "- 10", and "10'h" all fail this way rather than silently
// resolving to an unrelated label named the same thing.
func parseLiteral(token string, line int, symbols *symbolTable) (uint16, error) {
	if len(token) >= 2 && token[:2] == "h'" {
		if !hexLiteralRe.MatchString(token) {
			return 0, lerr.AtLine(lerr.InvalidLiteral, line, "malformed hex literal "+quote(token))
		}
		v, err := strconv.ParseUint(token[2:], 16, 16)
		if err != nil {
			return 0, lerr.WrapAtLine(lerr.InvalidLiteral, line, "malformed hex literal "+quote(token), err)
		}
		return uint16(v), nil
	}

	if decimalLiteralRe.MatchString(token) {
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return 0, lerr.WrapAtLine(lerr.InvalidLiteral, line, "malformed decimal literal "+quote(token), err)
		}
		if n < -(1<<15) || n > (1<<16-1) {
			return 0, lerr.AtLine(lerr.InvalidLiteral, line, "literal "+quote(token)+" out of 16-bit range")
		}
		return uint16(int16(n)), nil
	}

	if looksNumeric(token) {
		return 0, lerr.AtLine(lerr.InvalidLiteral, line, "malformed literal "+quote(token))
	}

	return symbols.lookup(token), nil
}

// looksNumeric reports whether a token that failed both numeric grammars
// was nonetheless an attempt at one, rather than a label name: anything
// starting with a digit or a minus sign.
func looksNumeric(token string) bool {
	if token == "" {
		return false
	}
	r := rune(token[0])
	return r == '-' || unicode.IsDigit(r)
}

func quote(s string) string {
	return "\"" + s + "\""
}
