// Copyright (c) 2025 A Bit of Help, Inc.

package stripper

import (
	"regexp"
	"unicode/utf8"

	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/stringutil"
)

// Source identifies how a country calling code context was established
// while stripping the international prefix.
type Source int

const (
	// FromDefaultCountry means no international prefix or leading '+' was
	// found; any country code extraction is a candidate against the
	// default region's own code.
	FromDefaultCountry Source = iota

	// FromPlus means the buffer began with '+' (or its fullwidth form).
	FromPlus

	// FromIDD means the buffer began with the default region's
	// international dialing prefix.
	FromIDD
)

// MaybeStripInternationalPrefixAndNormalize strips a leading '+' or, failing
// that, a leading match of iddRegex (provided the digit following the
// prefix is not '0', since no country calling code begins with 0). It
// reports which case applied via the returned Source.
func MaybeStripInternationalPrefixAndNormalize(buf string, iddRegex *regexp.Regexp) (string, Source) {
	if stringutil.HasAnyPrefix(buf, "+", "＋") {
		_, size := utf8.DecodeRuneInString(buf)
		return normalize.NormalizeDigitsOnly(buf[size:]), FromPlus
	}

	normalized := normalize.NormalizeDigitsOnly(buf)

	if iddRegex != nil {
		if loc := iddRegex.FindStringIndex(normalized); loc != nil && loc[0] == 0 {
			rest := normalized[loc[1]:]
			if rest != "" && rest[0] != '0' {
				return rest, FromIDD
			}
		}
	}

	return normalized, FromDefaultCountry
}

// MaybeStripNationalPrefix attempts to remove a national prefix from buf
// using nationalPrefixForParsing. If transformRule is non-empty AND the
// regex's last capture group actually participated in the match, the
// captured groups are substituted into transformRule to produce the new
// prefix (this is how Argentina's mobile "9" carrier code is inserted,
// only when the "15" carrier infix itself matched); otherwise — including
// a transform rule present but its carrier-code group unmatched — the
// matched prefix is simply removed. The transformation is only applied if
// the resulting string fully matches nationalRule — this guards against
// stripping a prefix digit that happens to also be a valid leading NSN
// digit (e.g. a literal "3" prefix when "123" fails the NSN pattern for
// the region).
func MaybeStripNationalPrefix(buf string, nationalPrefixForParsing *regexp.Regexp, transformRule string, nationalRule *regexp.Regexp) (string, bool) {
	if nationalPrefixForParsing == nil {
		return buf, false
	}

	loc := nationalPrefixForParsing.FindStringSubmatchIndex(buf)
	if loc == nil || loc[0] != 0 {
		return buf, false
	}

	rest := buf[loc[1]:]

	var candidate string
	if transformRule != "" && lastGroupParticipated(nationalPrefixForParsing, loc) {
		candidate = string(nationalPrefixForParsing.ExpandString(nil, transformRule, buf, loc)) + rest
	} else {
		candidate = rest
	}

	if !fullMatch(nationalRule, candidate) {
		return buf, false
	}
	return candidate, true
}

// lastGroupParticipated reports whether re's last capture group matched
// something in loc (the submatch-index slice from FindStringSubmatchIndex).
// A transform rule referencing that group (e.g. Argentina's carrier-code
// "9$1") must only fire when the group it reads from actually matched;
// otherwise the substitution produces a spurious value ("9" with no digits
// behind it) for inputs where the carrier-code infix never appeared.
func lastGroupParticipated(re *regexp.Regexp, loc []int) bool {
	n := re.NumSubexp()
	if n == 0 {
		return false
	}
	return loc[2*n] != -1
}

// fullMatch reports whether re matches the whole of s, not just a
// substring; nil re matches nothing (no guard configured means "do not
// strip").
func fullMatch(re *regexp.Regexp, s string) bool {
	if re == nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
