// Copyright (c) 2025 A Bit of Help, Inc.

package countrycode

import (
	"regexp"
	"strconv"
	"strings"

	kerrors "github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/stripper"
)

// minLengthAfterIDD is the fewest digits that may remain once an IDD (or a
// leading '+') and a country calling code have been stripped; fewer than
// this cannot plausibly be a national number.
const minLengthAfterIDD = 6

// maxCountryCodeDigits is the longest a country calling code can be.
const maxCountryCodeDigits = 3

// Result carries the outcome of a successful extraction.
type Result struct {
	CountryCode int
	NSN         string
	Source      stripper.Source
}

// Extract infers the country calling code for input given the default
// region's metadata (nil when the caller has none: Parse passes nil only for
// '+'-prefixed input, the matcher always; with nil, input without a leading
// '+' yields country code 0). store resolves calling
// code prefixes to known regions.
func Extract(input string, defaultMeta *metadata.TerritoryMetadata, store *metadata.Store) (Result, error) {
	buf := normalize.ExtractPossibleNumber(input)

	var idd *regexp.Regexp
	if defaultMeta != nil && defaultMeta.InternationalPrefix != "" {
		idd = regexcache.MustCompile(defaultMeta.InternationalPrefix)
	}

	rest, source := stripper.MaybeStripInternationalPrefixAndNormalize(buf, idd)

	if source == stripper.FromPlus || source == stripper.FromIDD {
		for length := 1; length <= maxCountryCodeDigits && length <= len(rest); length++ {
			candidate := rest[:length]
			cc, err := strconv.Atoi(candidate)
			if err != nil {
				continue
			}
			if len(store.RegionsForCountryCode(cc)) == 0 {
				continue
			}
			remainder := rest[length:]
			if len(remainder) < minLengthAfterIDD {
				return Result{}, kerrors.NewParseError(kerrors.TooShortAfterIDD,
					"too few digits remain after stripping the international prefix and country code")
			}
			return Result{CountryCode: cc, NSN: remainder, Source: source}, nil
		}
		return Result{}, kerrors.NewParseError(kerrors.InvalidCountryCode,
			"no known country calling code found at the start of the number")
	}

	if defaultMeta != nil && defaultMeta.CountryCode != 0 {
		ccStr := strconv.Itoa(defaultMeta.CountryCode)
		if strings.HasPrefix(rest, ccStr) {
			remainder := rest[len(ccStr):]
			generalRE := patternRE(defaultMeta.GeneralDesc.NationalNumberPattern)
			possibleRE := patternRE(defaultMeta.GeneralDesc.PossibleNumberPattern)

			remainderValid := matches(generalRE, remainder) && matches(possibleRE, remainder)
			alreadyValid := matches(generalRE, rest)

			if remainderValid && !alreadyValid {
				return Result{CountryCode: defaultMeta.CountryCode, NSN: remainder, Source: source}, nil
			}
		}
	}

	return Result{CountryCode: 0, NSN: rest, Source: source}, nil
}

// patternRE compiles a NumberDesc pattern for a full-string match,
// treating "" and the "NA" sentinel as "no pattern" (nil).
func patternRE(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == "NA" {
		return nil
	}
	return regexcache.MustCompileFull(pattern)
}

// matches reports whether re (already anchored full-string via
// regexcache.MustCompileFull) matches s, treating a nil re as "always
// matches" (no constraint configured).
func matches(re *regexp.Regexp, s string) bool {
	return re == nil || re.MatchString(s)
}
