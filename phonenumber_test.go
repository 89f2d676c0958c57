// Copyright (c) 2025 A Bit of Help, Inc.

package phonenumber_test

import (
	"testing"

	"github.com/abitofhelp/phonenumber"
	kerrors "github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) *phonenumber.Parser {
	t.Helper()
	store, err := metadata.Builtin()
	require.NoError(t, err)
	return phonenumber.NewParser(store)
}

func TestParseNZNationalDialing(t *testing.T) {
	p := newParser(t)

	n, err := p.Parse("033316005", "NZ")
	require.NoError(t, err)
	assert.Equal(t, 64, n.CountryCode)
	assert.Equal(t, uint64(33316005), n.NationalNumber)
}

func TestParseAndKeepRawWithExtension(t *testing.T) {
	p := newParser(t)

	n, err := p.ParseAndKeepRaw("+64 3 331 6005 ext 3456", metadata.UnknownRegion)
	require.NoError(t, err)
	assert.Equal(t, 64, n.CountryCode)
	assert.Equal(t, uint64(33316005), n.NationalNumber)
	assert.Equal(t, "3456", n.Extension)
	assert.Equal(t, "+64 3 331 6005 ext 3456", n.RawInput)
	assert.Equal(t, pn.CountryCodeSourceFromNumberWithPlus, n.CountryCodeSource)
}

func TestParseUSWithIDDPrefix(t *testing.T) {
	p := newParser(t)

	n, err := p.Parse("011 1-650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParseItalianLeadingZero(t *testing.T) {
	p := newParser(t)

	n, err := p.Parse("02 3661 8300", "IT")
	require.NoError(t, err)
	assert.True(t, n.ItalianLeadingZero)
	assert.Equal(t, "+390236618300", p.Format(n, pn.E164))
}

func TestFormatOutOfCountryCallingNumberArgentinaDomestic(t *testing.T) {
	p := newParser(t)

	n, err := p.Parse("+54 9 11 8765 4321", metadata.UnknownRegion)
	require.NoError(t, err)
	assert.Equal(t, "011 15 8765-4321", p.FormatOutOfCountryCallingNumber(n, "AR"))
}

func TestParseArgentinaFixedLineTrunkPrefixOnly(t *testing.T) {
	p := newParser(t)

	n, err := p.Parse("01123456789", "AR")
	require.NoError(t, err)
	assert.Equal(t, 54, n.CountryCode)
	assert.Equal(t, uint64(1123456789), n.NationalNumber)
	assert.Equal(t, pn.FIXED_LINE, p.GetNumberType(n))
}

func TestIsPossibleNumberStringRejectsNonNumericText(t *testing.T) {
	p := newParser(t)
	assert.False(t, p.IsPossibleNumberString("I want a Pizza", "US"))
}

func TestParseGBTooShortAfterIDD(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("0044", "GB")
	require.Error(t, err)
	assert.True(t, kerrors.IsKind(err, kerrors.TooShortAfterIDD))
}

func TestDENationalFormatReattachesNationalPrefix(t *testing.T) {
	p := newParser(t)

	n := pn.PhoneNumber{CountryCode: 49, NationalNumber: 1234}
	assert.Equal(t, "01234", p.Format(n, pn.NATIONAL))
	assert.Equal(t, "+491234", p.Format(n, pn.E164))
}

func TestIsNumberMatchNSNMatchIgnoresCompatibleExtension(t *testing.T) {
	p := newParser(t)

	a := pn.PhoneNumber{CountryCode: 64, NationalNumber: 33316005, Extension: "3456"}
	assert.Equal(t, pn.NSN_MATCH, p.IsNumberMatch(a, "+64 3 331 6005"))
}

func TestIsNumberMatchShortNSNMatchOnSuffixOverlap(t *testing.T) {
	p := newParser(t)

	a := pn.PhoneNumber{CountryCode: 64, NationalNumber: 23316005}
	b := pn.PhoneNumber{CountryCode: 64, NationalNumber: 3316005}
	assert.Equal(t, pn.SHORT_NSN_MATCH, p.IsNumberMatch(a, b))
}

func TestIsNumberMatchExactMatch(t *testing.T) {
	p := newParser(t)

	a := pn.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	b := pn.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	assert.Equal(t, pn.EXACT_MATCH, p.IsNumberMatch(a, b))
}

func TestIsNumberMatchNotANumber(t *testing.T) {
	p := newParser(t)
	assert.Equal(t, pn.NOT_A_NUMBER, p.IsNumberMatch("I want a Pizza", pn.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}))
}

func TestGetNumberTypeUSFixedLineOrMobile(t *testing.T) {
	p := newParser(t)

	n := pn.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123}
	assert.Equal(t, pn.FIXED_LINE_OR_MOBILE, p.GetNumberType(n))
}

func TestGetNumberTypeUSTollFree(t *testing.T) {
	p := newParser(t)

	n := pn.PhoneNumber{CountryCode: 1, NationalNumber: 8002345678}
	assert.Equal(t, pn.TOLL_FREE, p.GetNumberType(n))
}

func TestIsValidNumberForRegionRejectsWrongRegion(t *testing.T) {
	p := newParser(t)

	n := pn.PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	assert.True(t, p.IsValidNumberForRegion(n, "NZ"))
	assert.False(t, p.IsValidNumberForRegion(n, "US"))
}

func TestGetNANPACountriesIncludesUS(t *testing.T) {
	p := newParser(t)
	assert.Contains(t, p.GetNANPACountries(), "US")
	assert.True(t, p.IsNANPACountry("US"))
	assert.False(t, p.IsNANPACountry("NZ"))
}

func TestGetExampleNumberForType(t *testing.T) {
	p := newParser(t)

	ex := p.GetExampleNumberForType("NZ", pn.MOBILE)
	require.NotNil(t, ex)
	assert.Equal(t, 64, ex.CountryCode)
	assert.Equal(t, uint64(211234567), ex.NationalNumber)

	assert.Nil(t, p.GetExampleNumberForType("NZ", pn.TOLL_FREE))
}

func TestParseRejectsInputTooShortToBeViable(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("1", "US")
	require.Error(t, err)
	assert.True(t, kerrors.IsKind(err, kerrors.NotANumber))
}

func TestParseRejectsUnknownRegionWithoutPlus(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("0800123456", metadata.UnknownRegion)
	require.Error(t, err)
	assert.True(t, kerrors.IsKind(err, kerrors.InvalidCountryCode))
}

func TestParseNormalizationIsIdempotent(t *testing.T) {
	p := newParser(t)

	first, err := p.Parse("(650) 253-0000", "US")
	require.NoError(t, err)

	formatted := p.Format(first, pn.E164)
	second, err := p.Parse(formatted, metadata.UnknownRegion)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}
