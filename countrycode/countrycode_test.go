// Copyright (c) 2025 A Bit of Help, Inc.

package countrycode_test

import (
	"testing"

	"github.com/abitofhelp/phonenumber/countrycode"
	kerrors "github.com/abitofhelp/phonenumber/errors"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/stripper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFor(territories ...metadata.TerritoryMetadata) *metadata.Store {
	return metadata.NewStore(territories)
}

func TestExtractFromIDD(t *testing.T) {
	us := metadata.TerritoryMetadata{
		ID: "US", CountryCode: 1, InternationalPrefix: "011",
		GeneralDesc: metadata.NumberDesc{NationalNumberPattern: `\d{10}`, PossibleNumberPattern: `\d{10}`},
	}
	store := storeFor(us)

	res, err := countrycode.Extract("011 1-650-253-0000", &us, store)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CountryCode)
	assert.Equal(t, "6502530000", res.NSN)
	assert.Equal(t, stripper.FromIDD, res.Source)
}

func TestExtractTooShortAfterIDD(t *testing.T) {
	gb := metadata.TerritoryMetadata{ID: "GB", CountryCode: 44, InternationalPrefix: "00"}
	store := storeFor(gb)

	_, err := countrycode.Extract("0044", &gb, store)
	require.Error(t, err)
	assert.True(t, kerrors.IsKind(err, kerrors.TooShortAfterIDD))
}

func TestExtractFromDefaultCountryNoMatch(t *testing.T) {
	nz := metadata.TerritoryMetadata{
		ID: "NZ", CountryCode: 64, InternationalPrefix: "00",
		GeneralDesc: metadata.NumberDesc{NationalNumberPattern: `\d{8,9}`, PossibleNumberPattern: `\d{8,9}`},
	}
	store := storeFor(nz)

	res, err := countrycode.Extract("033316005", &nz, store)
	require.NoError(t, err)
	assert.Equal(t, 0, res.CountryCode)
	assert.Equal(t, "033316005", res.NSN)
	assert.Equal(t, stripper.FromDefaultCountry, res.Source)
}

func TestExtractFromPlus(t *testing.T) {
	nz := metadata.TerritoryMetadata{ID: "NZ", CountryCode: 64, InternationalPrefix: "00"}
	store := storeFor(nz)

	res, err := countrycode.Extract("+64 3 331 6005", nil, store)
	require.NoError(t, err)
	assert.Equal(t, 64, res.CountryCode)
	assert.Equal(t, "33316005", res.NSN)
	assert.Equal(t, stripper.FromPlus, res.Source)
}

func TestExtractInvalidCountryCode(t *testing.T) {
	store := storeFor(metadata.TerritoryMetadata{ID: "US", CountryCode: 1})

	_, err := countrycode.Extract("+999123456789", nil, store)
	require.Error(t, err)
	assert.True(t, kerrors.IsKind(err, kerrors.InvalidCountryCode))
}
