// Copyright (c) 2025 A Bit of Help, Inc.

package validator

import (
	"regexp"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// genericMinLength and genericMaxLength bound possible-number length when
// a country calling code does not map to any known region.
const (
	genericMinLength = 2
	genericMaxLength = 16
)

// maxLengthProbe is the longest digit string tried when deriving a
// possible_number_pattern's valid length set. Possible-number patterns are
// guaranteed to be length-only checks (spec §3), so probing with a
// same-length run of zero digits at each length is representative of the
// whole pattern.
const maxLengthProbe = 20

// IsPossibleNumberWithReason classifies p's NSN length against its
// resolved region's general possible-number pattern, or a generic 2-16
// digit window when the country code maps to no known region.
func IsPossibleNumberWithReason(p pn.PhoneNumber, store *metadata.Store) pn.ValidationResult {
	if p.CountryCode == 0 {
		return pn.INVALID_COUNTRY_CODE
	}

	nsn := p.NSNDigits()
	length := len(nsn)

	region := store.RegionForCountryCode(p.CountryCode)
	if region == metadata.UnknownRegion {
		switch {
		case length < genericMinLength:
			return pn.TOO_SHORT
		case length > genericMaxLength:
			return pn.TOO_LONG
		default:
			return pn.IS_POSSIBLE
		}
	}

	t, _ := store.Region(region)
	possibleRE := patternRE(t.GeneralDesc.PossibleNumberPattern)
	if possibleRE == nil {
		return pn.IS_POSSIBLE
	}

	minLen, maxLen, ok := lengthBounds(possibleRE)
	if !ok {
		if fullMatch(possibleRE, nsn) {
			return pn.IS_POSSIBLE
		}
		return pn.TOO_LONG
	}

	switch {
	case length < minLen:
		return pn.TOO_SHORT
	case length > maxLen:
		return pn.TOO_LONG
	default:
		return pn.IS_POSSIBLE
	}
}

// IsPossibleNumber is the boolean convenience form of
// IsPossibleNumberWithReason.
func IsPossibleNumber(p pn.PhoneNumber, store *metadata.Store) bool {
	return IsPossibleNumberWithReason(p, store) == pn.IS_POSSIBLE
}

// IsValidNumber reports whether p's NSN fully matches its resolved
// region's general national-number pattern.
func IsValidNumber(p pn.PhoneNumber, store *metadata.Store) bool {
	region := store.RegionForCountryCode(p.CountryCode)
	if region == metadata.UnknownRegion {
		return false
	}
	return IsValidNumberForRegion(p, region, store)
}

// IsValidNumberForRegion reports whether p belongs to region: region's
// country calling code must equal p's, and the NSN must match region's
// general national-number pattern. This lets NANPA sub-regions reject
// numbers that belong to a different NANPA region sharing country code 1.
func IsValidNumberForRegion(p pn.PhoneNumber, region string, store *metadata.Store) bool {
	t, ok := store.Region(region)
	if !ok {
		return false
	}
	if t.CountryCode != p.CountryCode {
		return false
	}
	if !t.GeneralDesc.IsApplicable() {
		return false
	}
	return fullMatch(regexcache.MustCompileFull(t.GeneralDesc.NationalNumberPattern), p.NSNDigits())
}

// typeCheckOrder lists the typed descriptors in the priority order
// get_number_type must test them, excluding FIXED_LINE and MOBILE which
// get special both-match handling.
var typeCheckOrder = []struct {
	typ  pn.Type
	desc func(*metadata.TerritoryMetadata) metadata.NumberDesc
}{
	{pn.PREMIUM_RATE, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.PremiumRate }},
	{pn.TOLL_FREE, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.TollFree }},
	{pn.SHARED_COST, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.SharedCost }},
	{pn.VOIP, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.Voip }},
	{pn.PERSONAL_NUMBER, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.PersonalNumber }},
	{pn.PAGER, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.Pager }},
	{pn.UAN, func(t *metadata.TerritoryMetadata) metadata.NumberDesc { return t.Uan }},
}

// GetNumberType classifies p's NSN against its resolved region's typed
// descriptors, in priority order, then resolves the fixed-line/mobile
// overlap case before falling back to UNKNOWN.
func GetNumberType(p pn.PhoneNumber, store *metadata.Store) pn.Type {
	region := store.RegionForCountryCode(p.CountryCode)
	if region == metadata.UnknownRegion {
		return pn.UNKNOWN
	}
	t, ok := store.Region(region)
	if !ok {
		return pn.UNKNOWN
	}

	nsn := p.NSNDigits()

	for _, c := range typeCheckOrder {
		desc := c.desc(t)
		if desc.IsApplicable() && fullMatch(regexcache.MustCompileFull(desc.NationalNumberPattern), nsn) {
			return c.typ
		}
	}

	fixedMatches := t.FixedLine.IsApplicable() && fullMatch(regexcache.MustCompileFull(t.FixedLine.NationalNumberPattern), nsn)
	mobileMatches := t.Mobile.IsApplicable() && fullMatch(regexcache.MustCompileFull(t.Mobile.NationalNumberPattern), nsn)

	switch {
	case fixedMatches && mobileMatches:
		return pn.FIXED_LINE_OR_MOBILE
	case fixedMatches:
		return pn.FIXED_LINE
	case mobileMatches:
		return pn.MOBILE
	default:
		return pn.UNKNOWN
	}
}

func patternRE(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == "NA" {
		return nil
	}
	return regexcache.MustCompileFull(pattern)
}

// fullMatch reports whether re (already anchored full-string via
// regexcache.MustCompileFull) matches s; nil re means no pattern was
// configured, which never matches.
func fullMatch(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}

// lengthBounds derives the minimum and maximum digit-string lengths that
// satisfy re by probing same-digit runs, relying on possible-number
// patterns being length-only checks. ok is false if no length in
// [0, maxLengthProbe] matches, meaning re isn't a simple length pattern.
func lengthBounds(re *regexp.Regexp) (min, max int, ok bool) {
	min, max = -1, -1
	for n := 0; n <= maxLengthProbe; n++ {
		probe := make([]byte, n)
		for i := range probe {
			probe[i] = '0'
		}
		if fullMatch(re, string(probe)) {
			if min == -1 {
				min = n
			}
			max = n
		}
	}
	return min, max, min != -1
}
