// Copyright (c) 2025 A Bit of Help, Inc.

package phonenumber

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abitofhelp/phonenumber/countrycode"
	kerrors "github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/formatter"
	"github.com/abitofhelp/phonenumber/matcher"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/stringutil"
	"github.com/abitofhelp/phonenumber/stripper"
	"github.com/abitofhelp/phonenumber/validator"
)

// maxRawInputLength bounds the raw input to Parse (spec §4.7 step 2); a
// longer string cannot plausibly be a phone number.
const maxRawInputLength = 250

// minNSNLength and maxNSNLength bound the national significant number once
// the country calling code and national prefix have been removed (spec
// §4.7 step 8).
const (
	minNSNLength = 2
	maxNSNLength = 16
)

// italianLeadingZeroCountryCode is the one country calling code (spec
// §4.7 step 9, §9) whose national numbers can carry a semantically
// significant leading zero that the integer NSN form cannot preserve.
const italianLeadingZeroCountryCode = 39

// Parser is a thin orchestrator over the kernel's pure-function
// components: normalize, stripper, countrycode, validator, formatter, and
// matcher. It holds a reference to an immutable metadata.Store (spec §5:
// safe for concurrent use, no locking needed) and wires those components
// into Parse's ten-step pipeline plus direct delegations for every other
// exported operation.
type Parser struct {
	store *metadata.Store
}

// NewParser creates a Parser over store. store must not be mutated after
// it is handed to NewParser; metadata.Store is itself immutable once built
// (see metadata.NewStore), so this is naturally satisfied by construction.
func NewParser(store *metadata.Store) *Parser {
	return &Parser{store: store}
}

// Parse recovers a canonical PhoneNumber from raw, using defaultRegion to
// resolve a country calling code when raw does not carry one explicitly
// (no leading '+' or recognized IDD). defaultRegion may be metadata.UnknownRegion
// ("ZZ") only when raw begins with '+'.
func (p *Parser) Parse(raw, defaultRegion string) (pn.PhoneNumber, error) {
	return p.parse(raw, defaultRegion, false)
}

// ParseAndKeepRaw is like Parse but additionally populates RawInput and
// CountryCodeSource on the returned PhoneNumber.
func (p *Parser) ParseAndKeepRaw(raw, defaultRegion string) (pn.PhoneNumber, error) {
	return p.parse(raw, defaultRegion, true)
}

func (p *Parser) parse(raw, defaultRegion string, keepRaw bool) (pn.PhoneNumber, error) {
	// Step 1: viability check, on the raw buffer (same order matcher.go
	// uses for its lenient string parse).
	if stringutil.IsEmpty(raw) || !normalize.IsViable(raw) {
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.NotANumber,
			"input does not contain a viable phone number")
	}

	// Step 2: raw length bound.
	if len(raw) > maxRawInputLength {
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.TooLong,
			"input exceeds the maximum raw length")
	}

	// Step 3: extension extraction, before possible-number extraction so a
	// marker like "ext. 3456" is captured before its letters would
	// otherwise ride along in the candidate buffer.
	withoutExt, ext := stripper.StripExtension(raw)

	if normalize.ExtractPossibleNumber(withoutExt) == "" {
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.NotANumber,
			"input does not contain a viable phone number")
	}

	// Step 4: default region metadata.
	defaultMeta, hasDefault := p.store.Region(defaultRegion)
	startsWithPlus := stringutil.HasAnyPrefix(withoutExt, "+", "＋")
	if !hasDefault && !startsWithPlus {
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.InvalidCountryCode,
			"no default region metadata and input has no leading '+'")
	}

	// Step 5: country code extraction.
	var defaultMetaPtr *metadata.TerritoryMetadata
	if hasDefault {
		defaultMetaPtr = defaultMeta
	}
	result, err := countrycode.Extract(withoutExt, defaultMetaPtr, p.store)
	if err != nil {
		return pn.PhoneNumber{}, err
	}

	cc := result.CountryCode
	nsn := result.NSN

	// Steps 6-7: resolve the territory whose national-prefix rules apply,
	// and strip the national prefix using it.
	var stripMeta *metadata.TerritoryMetadata
	if cc != 0 {
		region := p.store.RegionForCountryCode(cc)
		stripMeta, _ = p.store.Region(region)
	} else {
		cc = defaultMetaPtr.CountryCode
		stripMeta = defaultMetaPtr
	}

	if stripMeta != nil {
		nsn = stripNationalPrefix(nsn, stripMeta)
	}

	// Step 8: NSN length bound.
	switch {
	case len(nsn) < minNSNLength:
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.TooShortNSN,
			"national significant number is too short")
	case len(nsn) > maxNSNLength:
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.TooLong,
			"national significant number is too long")
	}

	// Step 9: Italian leading zero.
	italianLeadingZero := cc == italianLeadingZeroCountryCode && strings.HasPrefix(nsn, "0")

	// Step 10: build the PhoneNumber.
	n, numErr := strconv.ParseUint(nsn, 10, 64)
	if numErr != nil {
		return pn.PhoneNumber{}, kerrors.NewParseError(kerrors.NotANumber,
			"national significant number is not numeric")
	}

	out := pn.PhoneNumber{
		CountryCode:        cc,
		NationalNumber:     n,
		ItalianLeadingZero: italianLeadingZero,
		Extension:          ext,
	}
	if keepRaw {
		out.RawInput = raw
		out.CountryCodeSource = countryCodeSource(result.Source, cc)
	}
	return out, nil
}

func countryCodeSource(src stripper.Source, cc int) pn.CountryCodeSource {
	switch {
	case cc == 0:
		return pn.CountryCodeSourceFromDefaultCountry
	case src == stripper.FromPlus:
		return pn.CountryCodeSourceFromNumberWithPlus
	case src == stripper.FromIDD:
		return pn.CountryCodeSourceFromNumberWithIDD
	default:
		return pn.CountryCodeSourceFromDefaultCountry
	}
}

// stripNationalPrefix applies stripper.MaybeStripNationalPrefix using t's
// national-prefix-for-parsing regex, transform rule, and general pattern
// as the validation guard.
func stripNationalPrefix(nsn string, t *metadata.TerritoryMetadata) string {
	if t.NationalPrefixForParsing == "" {
		return nsn
	}
	npRE := patternRE(t.NationalPrefixForParsing)
	generalRE := patternREFull(t.GeneralDesc.NationalNumberPattern)
	stripped, _ := stripper.MaybeStripNationalPrefix(nsn, npRE, t.NationalPrefixTransformRule, generalRE)
	return stripped
}

// patternRE compiles pattern via the shared regex cache for a prefix match
// (nationalPrefixForParsing is only ever matched at the start of a buffer),
// treating "" and the "NA" sentinel as "no pattern configured".
func patternRE(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == "NA" {
		return nil
	}
	return regexcache.MustCompile(pattern)
}

// patternREFull is patternRE for patterns stripNationalPrefix's
// fullMatch-guard needs matched against the entire candidate string.
func patternREFull(pattern string) *regexp.Regexp {
	if pattern == "" || pattern == "NA" {
		return nil
	}
	return regexcache.MustCompileFull(pattern)
}

// Format renders number in the requested style using this Parser's
// metadata store.
func (p *Parser) Format(number pn.PhoneNumber, target pn.Format) string {
	return formatter.Format(number, target, p.store)
}

// FormatByPattern is like Format, but selection runs over userFormats
// instead of the resolved region's own format list.
func (p *Parser) FormatByPattern(number pn.PhoneNumber, target pn.Format, userFormats []metadata.NumberFormat) string {
	return formatter.FormatByPattern(number, target, userFormats, p.store)
}

// FormatOutOfCountryCallingNumber renders number the way someone dialing
// from callingFromRegion would need to dial it.
func (p *Parser) FormatOutOfCountryCallingNumber(number pn.PhoneNumber, callingFromRegion string) string {
	return formatter.FormatOutOfCountryCallingNumber(number, callingFromRegion, p.store)
}

// IsPossibleNumber reports whether number's NSN length fits its region's
// possible-length window.
func (p *Parser) IsPossibleNumber(number pn.PhoneNumber) bool {
	return validator.IsPossibleNumber(number, p.store)
}

// IsPossibleNumberWithReason is IsPossibleNumber's non-boolean form,
// distinguishing why a number is not possible.
func (p *Parser) IsPossibleNumberWithReason(number pn.PhoneNumber) pn.ValidationResult {
	return validator.IsPossibleNumberWithReason(number, p.store)
}

// IsPossibleNumberString parses raw against defaultRegion and reports
// whether the result is possible; a parse failure of any kind counts as
// not possible.
func (p *Parser) IsPossibleNumberString(raw, defaultRegion string) bool {
	number, err := p.Parse(raw, defaultRegion)
	if err != nil {
		return false
	}
	return p.IsPossibleNumber(number)
}

// IsValidNumber reports whether number's NSN fully matches its resolved
// region's general national-number pattern.
func (p *Parser) IsValidNumber(number pn.PhoneNumber) bool {
	return validator.IsValidNumber(number, p.store)
}

// IsValidNumberForRegion is IsValidNumber additionally constrained to a
// specific region (disambiguates NANPA sub-regions sharing country code 1).
func (p *Parser) IsValidNumberForRegion(number pn.PhoneNumber, region string) bool {
	return validator.IsValidNumberForRegion(number, region, p.store)
}

// GetNumberType classifies number by service category.
func (p *Parser) GetNumberType(number pn.PhoneNumber) pn.Type {
	return validator.GetNumberType(number, p.store)
}

// GetRegionCodeForNumber returns the single best region for number's
// country calling code.
func (p *Parser) GetRegionCodeForNumber(number pn.PhoneNumber) string {
	return p.store.RegionForCountryCode(number.CountryCode)
}

// GetRegionCodeForCountryCode returns the single best region for cc.
func (p *Parser) GetRegionCodeForCountryCode(cc int) string {
	return p.store.RegionForCountryCode(cc)
}

// GetCountryCodeForRegion returns the country calling code registered for
// region, or 0 if region is unknown.
func (p *Parser) GetCountryCodeForRegion(region string) int {
	return p.store.CountryCodeForRegion(region)
}

// GetNANPACountries returns every region sharing NANPA's country calling
// code (1).
func (p *Parser) GetNANPACountries() []string {
	return p.store.NANPARegions()
}

// IsNANPACountry reports whether region shares NANPA's country calling
// code (1).
func (p *Parser) IsNANPACountry(region string) bool {
	return p.store.IsNANPARegion(region)
}

// GetExampleNumber returns a representative valid number for region, using
// its general descriptor's example, or nil if region is unknown or carries
// no example.
func (p *Parser) GetExampleNumber(region string) *pn.PhoneNumber {
	t, ok := p.store.Region(region)
	if !ok {
		return nil
	}
	return exampleFromDesc(t.CountryCode, t.GeneralDesc)
}

// GetExampleNumberForType is GetExampleNumber scoped to a specific
// PhoneNumberType.
func (p *Parser) GetExampleNumberForType(region string, typ pn.Type) *pn.PhoneNumber {
	t, ok := p.store.Region(region)
	if !ok {
		return nil
	}
	desc, ok := descriptorForType(t, typ)
	if !ok {
		return nil
	}
	return exampleFromDesc(t.CountryCode, desc)
}

func descriptorForType(t *metadata.TerritoryMetadata, typ pn.Type) (metadata.NumberDesc, bool) {
	switch typ {
	case pn.FIXED_LINE, pn.FIXED_LINE_OR_MOBILE:
		return t.FixedLine, true
	case pn.MOBILE:
		return t.Mobile, true
	case pn.TOLL_FREE:
		return t.TollFree, true
	case pn.PREMIUM_RATE:
		return t.PremiumRate, true
	case pn.SHARED_COST:
		return t.SharedCost, true
	case pn.PERSONAL_NUMBER:
		return t.PersonalNumber, true
	case pn.VOIP:
		return t.Voip, true
	case pn.PAGER:
		return t.Pager, true
	case pn.UAN:
		return t.Uan, true
	default:
		return metadata.NumberDesc{}, false
	}
}

func exampleFromDesc(cc int, desc metadata.NumberDesc) *pn.PhoneNumber {
	if desc.ExampleNumber == "" {
		return nil
	}
	n, err := strconv.ParseUint(desc.ExampleNumber, 10, 64)
	if err != nil {
		return nil
	}
	return &pn.PhoneNumber{
		CountryCode:        cc,
		NationalNumber:     n,
		ItalianLeadingZero: cc == italianLeadingZeroCountryCode && strings.HasPrefix(desc.ExampleNumber, "0"),
	}
}

// IsNumberMatch compares a and b (each a pn.PhoneNumber or a raw string)
// and reports their level of equivalence.
func (p *Parser) IsNumberMatch(a, b any) pn.MatchType {
	return matcher.IsNumberMatch(a, b, p.store)
}
