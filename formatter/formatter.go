// Copyright (c) 2025 A Bit of Help, Inc.

package formatter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/abitofhelp/phonenumber/regexcache"
)

// Format renders p in the requested style using store's metadata.
func Format(p pn.PhoneNumber, target pn.Format, store *metadata.Store) string {
	nsn := p.NSNDigits()
	cc := strconv.Itoa(p.CountryCode)

	t, ok := store.Region(store.RegionForCountryCode(p.CountryCode))
	if !ok {
		return formatNoMetadata(cc, nsn, p.Extension, target)
	}

	switch target {
	case pn.E164:
		return "+" + cc + nsn

	case pn.RFC3966:
		s := "tel:+" + cc + nsn
		if p.Extension != "" {
			s += ";ext=" + p.Extension
		}
		return s

	case pn.NATIONAL:
		body := formatWithRules(nsn, t.NationalFormats, t)
		return appendExtension(body, p.Extension, t)

	case pn.INTERNATIONAL:
		formats := t.InternationalFormats
		if len(formats) == 0 {
			formats = t.NationalFormats
		}
		body := formatWithRules(nsn, formats, nil)
		full := "+" + cc + " " + body
		return appendExtension(full, p.Extension, t)

	default:
		return formatNoMetadata(cc, nsn, p.Extension, target)
	}
}

// FormatByPattern is like Format for NATIONAL/INTERNATIONAL, except the
// caller supplies the candidate format list instead of the resolved
// region's own; selection rules are unchanged.
func FormatByPattern(p pn.PhoneNumber, target pn.Format, userFormats []metadata.NumberFormat, store *metadata.Store) string {
	nsn := p.NSNDigits()
	cc := strconv.Itoa(p.CountryCode)
	t, _ := store.Region(store.RegionForCountryCode(p.CountryCode))

	var body string
	if target == pn.NATIONAL {
		body = formatWithRules(nsn, userFormats, t)
		return appendExtension(body, p.Extension, t)
	}

	body = formatWithRules(nsn, userFormats, nil)
	full := "+" + cc + " " + body
	return appendExtension(full, p.Extension, t)
}

// FormatOutOfCountryCallingNumber renders p the way a caller dialing from
// callingFromRegion would need to dial it: domestically as NATIONAL (which
// already carries any region-specific alternate dialing forms via its own
// metadata, e.g. Argentina's mobile "15" form), or with callingFromRegion's
// exit code, country code, and an INTERNATIONAL-formatted body otherwise.
func FormatOutOfCountryCallingNumber(p pn.PhoneNumber, callingFromRegion string, store *metadata.Store) string {
	numberRegion := store.RegionForCountryCode(p.CountryCode)
	if callingFromRegion == numberRegion {
		return Format(p, pn.NATIONAL, store)
	}

	fromMeta, ok := store.Region(callingFromRegion)
	if !ok {
		return Format(p, pn.E164, store)
	}

	exitCode := fromMeta.PreferredInternationalPrefix
	if exitCode == "" {
		exitCode = firstLiteralAlternative(fromMeta.InternationalPrefix)
	}

	t, _ := store.Region(numberRegion)
	nsn := p.NSNDigits()

	var body string
	if t != nil {
		formats := t.InternationalFormats
		if len(formats) == 0 {
			formats = t.NationalFormats
		}
		body = formatWithRules(nsn, formats, nil)
	} else {
		body = nsn
	}

	full := exitCode + " " + strconv.Itoa(p.CountryCode) + " " + body
	return appendExtension(full, p.Extension, t)
}

// formatNoMetadata is used when the country calling code has no registered
// region (e.g. a reserved/unused code): NATIONAL is the bare NSN,
// INTERNATIONAL renders as "+CC NSN" and E164 as "+CCNSN", with no grouping.
func formatNoMetadata(cc, nsn, ext string, target pn.Format) string {
	switch target {
	case pn.NATIONAL:
		return nsn
	case pn.RFC3966:
		s := "tel:+" + cc + nsn
		if ext != "" {
			s += ";ext=" + ext
		}
		return s
	case pn.INTERNATIONAL:
		s := "+" + cc + " " + nsn
		if ext != "" {
			s += " ext. " + ext
		}
		return s
	default: // E164
		return "+" + cc + nsn
	}
}

// appendExtension appends t's preferred extension prefix (or the package
// default) followed by ext, unless ext is empty.
func appendExtension(body, ext string, t *metadata.TerritoryMetadata) string {
	if ext == "" {
		return body
	}
	prefix := metadata.DefaultExtnPrefix
	if t != nil {
		prefix = t.ExtnPrefix()
	}
	return body + prefix + ext
}

// formatWithRules selects the first rule in formats whose leading-digits
// pattern (if present) matches a prefix of nsn and whose full pattern
// matches nsn, then applies its template. If t is non-nil, NATIONAL's
// national-prefix-formatting-rule substitution is applied; pass nil to
// render an unprefixed body (used for INTERNATIONAL).
func formatWithRules(nsn string, formats []metadata.NumberFormat, t *metadata.TerritoryMetadata) string {
	rule, pattern := selectFormat(nsn, formats)
	if rule == nil {
		return nsn
	}

	if t == nil {
		return pattern.ReplaceAllString(nsn, rule.Format)
	}

	npRule := rule.NationalPrefixFormattingRule
	if npRule == "" {
		npRule = t.NationalPrefixFormattingRule
	}
	if npRule == "" || npRule == "NONE" {
		return pattern.ReplaceAllString(nsn, rule.Format)
	}

	npExpanded := strings.ReplaceAll(npRule, "$NP", t.NationalPrefix)
	npExpanded = strings.ReplaceAll(npExpanded, "$FG", "$1")
	combined := strings.Replace(rule.Format, "$1", npExpanded, 1)
	return pattern.ReplaceAllString(nsn, combined)
}

func selectFormat(nsn string, formats []metadata.NumberFormat) (*metadata.NumberFormat, *regexp.Regexp) {
	for i := range formats {
		f := &formats[i]

		if f.LeadingDigitsPattern != "" {
			leadingRE := regexcache.MustCompile(f.LeadingDigitsPattern)
			if loc := leadingRE.FindStringIndex(nsn); loc == nil || loc[0] != 0 {
				continue
			}
		}

		// f.Pattern must match the whole of nsn, not just a prefix or
		// substring; MustCompileFull anchors it (`\A(?:pattern)\z`, a
		// non-capturing wrapper, so $1/$2/... group numbering used by
		// ReplaceAllString below is unaffected).
		pattern := regexcache.MustCompileFull(f.Pattern)
		if !pattern.MatchString(nsn) {
			continue
		}
		return f, pattern
	}
	return nil, nil
}

// altRE finds the first digit run in a regex alternation/character-class
// shaped international-prefix pattern, used as a best-effort literal exit
// code when a region has no PreferredInternationalPrefix of its own.
var altRE = regexp.MustCompile(`[0-9]+`)

func firstLiteralAlternative(pattern string) string {
	if m := altRE.FindString(pattern); m != "" {
		return m
	}
	return pattern
}
