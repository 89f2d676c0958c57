package normalize

import (
	"regexp"
	"strings"
)

// keypad maps the standard telephone keypad letters to the digit they sit
// under. Both cases map to the same digit.
var keypad = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// digitValue returns the ASCII digit byte for r if r is a recognized
// decimal digit (ASCII, fullwidth, or Arabic-Indic), and ok=false
// otherwise.
func digitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r), true
	case r >= 0xFF10 && r <= 0xFF19: // fullwidth 0-9
		return byte(r-0xFF10) + '0', true
	case r >= 0x0660 && r <= 0x0669: // Arabic-Indic 0-9
		return byte(r-0x0660) + '0', true
	default:
		return 0, false
	}
}

// letterDigit returns the keypad digit byte for r if r is an ASCII letter
// with a keypad mapping, and ok=false otherwise.
func letterDigit(r rune) (byte, bool) {
	d, ok := keypad[toUpperASCII(r)]
	return d, ok
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Normalize maps every character of s to its digit form: ASCII/fullwidth/
// Arabic-Indic digits pass through as ASCII digits, letters map through the
// telephone keypad, and everything else is dropped.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte(d)
			continue
		}
		if d, ok := letterDigit(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly is like Normalize but drops letters instead of
// mapping them through the keypad.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// viableRE requires an allowed starting character followed by a body of
// only digits, letters, and the allowed punctuation/whitespace set (hyphen,
// dot, parens, asterisk, hash, slash, ASCII space, NBSP, soft hyphen,
// zero-width space, word joiner, ideographic space).
var viableRE = regexp.MustCompile(
	`^[+\x{FF0B}0-9(]` +
		`[0-9A-Za-z\-.()*#/ \x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}]*$`,
)

var digitCountRE = regexp.MustCompile(`[0-9\x{FF10}-\x{FF19}\x{0660}-\x{0669}]`)

// IsViable reports whether s could plausibly be a phone number: it must
// start with a digit, '+' (or fullwidth '+'), or '(', contain only digits,
// letters, and recognized punctuation thereafter, and contain at least two
// digits overall.
func IsViable(s string) bool {
	if s == "" {
		return false
	}
	if !viableRE.MatchString(s) {
		return false
	}
	return len(digitCountRE.FindAllString(s, -1)) >= 2
}

// validStartCharRE matches the first character that could begin a phone
// number candidate: a digit, '+', or '('.
var validStartCharRE = regexp.MustCompile(`[+\x{FF0B}0-9(]`)

// validBodyCharRE matches characters that can appear inside a phone number
// candidate once it has started (letters are tolerated at this stage; the
// stripper step decides whether they carry semantic meaning).
var validBodyCharRE = regexp.MustCompile(
	`[0-9A-Za-z\-.()*#/ \x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}]`,
)

// ExtractPossibleNumber strips everything before the first character that
// could start a phone number, then truncates at the first character after
// that point that cannot be part of one. It returns "" if nothing remains.
func ExtractPossibleNumber(s string) string {
	loc := validStartCharRE.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	rest := s[loc[0]:]

	runes := []rune(rest)
	end := len(runes)
	for i := 1; i < len(runes); i++ {
		if !validBodyCharRE.MatchString(string(runes[i])) {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(runes[:end]))
}
