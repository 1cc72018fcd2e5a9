package assembler

import (
	"fmt"
	"regexp"
	"strings"
)

// labelDeclRe matches a label declaration: a line whose first
// non-whitespace token is a colon followed by one or more alphanumerics,
// and nothing else.
var labelDeclRe = regexp.MustCompile(`^:([A-Za-z0-9]+)$`)

// gotoRe matches the goto:X macro, capturing the register name.
var gotoRe = regexp.MustCompile(`^goto:([A-Za-z0-9]+)$`)

// hasLetter reports whether s contains at least one ASCII letter.
var hasLetter = regexp.MustCompile(`[A-Za-z]`)

// stripComment removes everything from the first ';' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// isBlank reports whether a comment-stripped line carries no instruction
// text: a line with no letters at all is skipped without altering the
// byte offset.
func isBlank(line string) bool {
	return !hasLetter.MatchString(line)
}

// labelDecl reports whether the trimmed line declares a label, returning
// its name with the leading colon stripped.
func labelDecl(trimmed string) (name string, ok bool) {
	m := labelDeclRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// rewriteGoto expands goto:X into "SET X <addr>" where addr is the byte
// offset of the instruction following this one (currentOffset + 4, since
// the SET this expands to is itself 4 bytes: opcode word + literal word).
func rewriteGoto(trimmed string, currentOffset int) (string, bool) {
	m := gotoRe.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed, false
	}
	return fmt.Sprintf("SET %s %d", m[1], currentOffset+4), true
}

// tokenize splits an instruction line into whitespace/comma-separated
// fields: commas are operand separators equivalent to whitespace.
func tokenize(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
	return fields
}
