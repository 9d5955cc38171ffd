package slides

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile("^\\s*```json\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```\\s*$")
)

// Sanitize converts a raw model response into a best-effort parseable JSON
// string. It repairs textual syntax issues only; it does not validate field
// types or value ranges. The steps, in order:
//
//  1. Strip a leading ```json fence marker and a trailing ``` fence marker.
//  2. Trim surrounding whitespace.
//  3. Cut everything outside the first '{' and the last '}', discarding any
//     prose the model wrapped around the JSON object.
//  4. Degrade \u escapes not followed by four hex digits to a literal 'u'.
//  5. Remove control characters that are illegal inside JSON string literals,
//     preserving tab, newline and carriage return.
//
// Step 4 is irreversible and lossy: a legitimately truncated \u escape is
// indistinguishable from a malformed one, and both lose their backslash.
// Step 3 assumes a single top-level JSON object; payloads with several
// objects (or none) pass through and fail at parse time instead.
func Sanitize(raw string) string {
	s := fenceOpenRe.ReplaceAllString(raw, "")
	s = fenceCloseRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// Bound to the outermost braces when both are present
	if start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}'); start != -1 && end != -1 && start < end {
		s = s[start : end+1]
	}

	s = repairUnicodeEscapes(s)
	return stripControlChars(s)
}

// repairUnicodeEscapes drops the backslash of any \u escape that is not
// followed by exactly four hex digits, leaving a literal 'u' behind. Valid
// \uXXXX sequences pass through untouched.
func repairUnicodeEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == 'u' && !followedByHexQuad(s, i+2) {
			continue // skip the backslash; the 'u' is written on the next iteration
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func followedByHexQuad(s string, at int) bool {
	if at+4 > len(s) {
		return false
	}
	for i := at; i < at+4; i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// stripControlChars removes the C0 control characters except tab, newline and
// carriage return, plus DEL and the C1 range (U+007F through U+009F).
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20:
			return -1
		case r >= 0x7F && r <= 0x9F:
			return -1
		}
		return r
	}, s)
}
