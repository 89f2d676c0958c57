// Copyright (c) 2025 A Bit of Help, Inc.

package matcher

import (
	"strconv"
	"strings"

	"github.com/abitofhelp/phonenumber/countrycode"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/abitofhelp/phonenumber/stringutil"
	"github.com/abitofhelp/phonenumber/stripper"
)

// minOverlapForShortMatch is the shortest suffix overlap, in digits, that
// still counts as a SHORT_NSN_MATCH.
const minOverlapForShortMatch = 7

// IsNumberMatch compares a and b, each either a pn.PhoneNumber or a raw
// string, and reports their level of equivalence. A raw string is parsed
// leniently: a '+'-prefixed string needs no default region, and a bare
// string without one resolves to country code 0 rather than failing, so
// that NSN-only comparisons remain possible. An operand of any other type,
// or a string that isn't even viable as a phone number, yields
// NOT_A_NUMBER.
func IsNumberMatch(a, b any, store *metadata.Store) pn.MatchType {
	pa, ok := toPhoneNumber(a, store)
	if !ok {
		return pn.NOT_A_NUMBER
	}
	pb, ok := toPhoneNumber(b, store)
	if !ok {
		return pn.NOT_A_NUMBER
	}
	return compare(pa, pb)
}

func toPhoneNumber(v any, store *metadata.Store) (pn.PhoneNumber, bool) {
	switch x := v.(type) {
	case pn.PhoneNumber:
		return x, true
	case string:
		return parseLenient(x, store)
	default:
		return pn.PhoneNumber{}, false
	}
}

// parseLenient extracts a country code and NSN from raw without consulting
// any default region's metadata, mirroring the matcher's raw-string
// comparison path: a '+'-prefixed number resolves its own country code,
// while a bare string falls back to country code 0.
func parseLenient(raw string, store *metadata.Store) (pn.PhoneNumber, bool) {
	if !normalize.IsViable(raw) {
		return pn.PhoneNumber{}, false
	}

	stripped, ext := stripper.StripExtension(raw)
	possible := normalize.ExtractPossibleNumber(stripped)

	result, err := countrycode.Extract(possible, nil, store)
	if err != nil {
		return pn.PhoneNumber{}, false
	}
	if len(result.NSN) < 2 {
		return pn.PhoneNumber{}, false
	}

	n, err := strconv.ParseUint(result.NSN, 10, 64)
	if err != nil {
		return pn.PhoneNumber{}, false
	}

	source := pn.CountryCodeSourceUnspecified
	if stringutil.HasAnyPrefix(possible, "+", "＋") {
		source = pn.CountryCodeSourceFromNumberWithPlus
	}

	return pn.PhoneNumber{
		CountryCode:        result.CountryCode,
		NationalNumber:     n,
		ItalianLeadingZero: result.CountryCode == 39 && strings.HasPrefix(result.NSN, "0"),
		Extension:          ext,
		CountryCodeSource:  source,
	}, true
}

func compare(a, b pn.PhoneNumber) pn.MatchType {
	if a.Equal(b) {
		return pn.EXACT_MATCH
	}

	ccCompatible := a.CountryCode == b.CountryCode ||
		a.CountryCodeSource == pn.CountryCodeSourceUnspecified ||
		b.CountryCodeSource == pn.CountryCodeSourceUnspecified

	if ccCompatible && a.NationalNumber == b.NationalNumber && extensionsCompatible(a.Extension, b.Extension) {
		return pn.NSN_MATCH
	}

	nsnA, nsnB := a.NSNDigits(), b.NSNDigits()
	if len(nsnA) >= minOverlapForShortMatch && len(nsnB) >= minOverlapForShortMatch && isSuffixOfEither(nsnA, nsnB) {
		return pn.SHORT_NSN_MATCH
	}

	return pn.NO_MATCH
}

func extensionsCompatible(a, b string) bool {
	return a == "" || b == "" || a == b
}

func isSuffixOfEither(a, b string) bool {
	if len(a) <= len(b) {
		return strings.HasSuffix(b, a)
	}
	return strings.HasSuffix(a, b)
}
