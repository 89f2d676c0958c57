// Copyright (c) 2025 A Bit of Help, Inc.

package pn

// CountryCodeSource records where a parsed number's country calling code
// came from, populated by ParseAndKeepRaw and by the matcher's raw-string
// parse.
type CountryCodeSource int

const (
	// CountryCodeSourceUnspecified means the source was not recorded (the
	// plain Parse entry point does not populate it).
	CountryCodeSourceUnspecified CountryCodeSource = iota

	// CountryCodeSourceFromNumberWithPlus means the input began with '+'.
	CountryCodeSourceFromNumberWithPlus

	// CountryCodeSourceFromNumberWithIDD means the input began with the
	// default region's international dialing prefix.
	CountryCodeSourceFromNumberWithIDD

	// CountryCodeSourceFromDefaultCountry means the country calling code
	// was inferred from the default region, not present in the input.
	CountryCodeSourceFromDefaultCountry
)

// PhoneNumber is the canonical parsed value: a country calling code, a
// national significant number stored without its national prefix, an
// Italian-leading-zero flag, and an optional extension.
//
// country_code == 0 means "invalid/unknown", per spec. Equality (see
// Equal) does not consider RawInput or CountryCodeSource.
type PhoneNumber struct {
	CountryCode int

	// NationalNumber is the NSN as an unsigned integer; leading zeros are
	// not preserved numerically (see ItalianLeadingZero).
	NationalNumber uint64

	// ItalianLeadingZero is true when the NSN has a significant leading
	// zero that the integer form above would otherwise erase.
	ItalianLeadingZero bool

	// Extension holds extension digits only, no prefix punctuation. Empty
	// string means "no extension".
	Extension string

	// RawInput preserves the original input string; only populated by
	// ParseAndKeepRaw.
	RawInput string

	// CountryCodeSource records how the country code was determined;
	// populated by ParseAndKeepRaw and by the matcher's raw-string parse.
	CountryCodeSource CountryCodeSource
}

// Equal reports whether two PhoneNumber values are equivalent: same
// country code, national number, Italian-leading-zero flag, and extension
// (an empty extension is equivalent to an absent one). RawInput and
// CountryCodeSource are not considered.
func (p PhoneNumber) Equal(o PhoneNumber) bool {
	return p.CountryCode == o.CountryCode &&
		p.NationalNumber == o.NationalNumber &&
		p.ItalianLeadingZero == o.ItalianLeadingZero &&
		p.Extension == o.Extension
}

// WithExtension returns a copy of p with its extension set to ext.
func (p PhoneNumber) WithExtension(ext string) PhoneNumber {
	p.Extension = ext
	return p
}

// Format identifies a rendering style for formatter.Format.
type Format int

const (
	E164 Format = iota
	INTERNATIONAL
	NATIONAL
	RFC3966
)

// Type classifies a validated number by service category.
type Type int

const (
	FIXED_LINE Type = iota
	MOBILE
	FIXED_LINE_OR_MOBILE
	TOLL_FREE
	PREMIUM_RATE
	SHARED_COST
	VOIP
	PERSONAL_NUMBER
	PAGER
	UAN
	UNKNOWN
)

// ValidationResult is the outcome of IsPossibleNumberWithReason.
type ValidationResult int

const (
	IS_POSSIBLE ValidationResult = iota
	INVALID_COUNTRY_CODE
	TOO_SHORT
	TOO_LONG
)

// MatchType is the outcome of IsNumberMatch, ordered from weakest to
// strongest so callers can compare with >=.
type MatchType int

const (
	NOT_A_NUMBER MatchType = iota
	NO_MATCH
	SHORT_NSN_MATCH
	NSN_MATCH
	EXACT_MATCH
)
