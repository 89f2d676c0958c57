// Copyright (c) 2025 A Bit of Help, Inc.

package metadata_test

import (
	"testing"

	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinStore(t *testing.T) {
	store, err := metadata.Builtin()
	require.NoError(t, err)
	require.NotNil(t, store)

	us, ok := store.Region("US")
	require.True(t, ok)
	assert.Equal(t, 1, us.CountryCode)
	assert.True(t, store.IsNANPARegion("US"))

	_, ok = store.Region("ZZ")
	assert.False(t, ok)

	assert.Equal(t, 0, store.CountryCodeForRegion("ZZ"))
	assert.Equal(t, metadata.UnknownRegion, store.RegionForCountryCode(9999))
}

func TestNewStoreMainCountryForRegion(t *testing.T) {
	store := metadata.NewStore([]metadata.TerritoryMetadata{
		{ID: "CA", CountryCode: 1},
		{ID: "US", CountryCode: 1, MainCountryForRegion: true},
	})

	assert.Equal(t, "US", store.RegionForCountryCode(1))
	assert.ElementsMatch(t, []string{"CA", "US"}, store.RegionsForCountryCode(1))
	assert.ElementsMatch(t, []string{"CA", "US"}, store.NANPARegions())
}

func TestNumberDescIsApplicable(t *testing.T) {
	assert.False(t, metadata.NumberDesc{}.IsApplicable())
	assert.False(t, metadata.NumberDesc{NationalNumberPattern: "NA"}.IsApplicable())
	assert.True(t, metadata.NumberDesc{NationalNumberPattern: `\d{4}`}.IsApplicable())
}

func TestExtnPrefixDefault(t *testing.T) {
	t1 := metadata.TerritoryMetadata{}
	assert.Equal(t, metadata.DefaultExtnPrefix, t1.ExtnPrefix())

	t2 := metadata.TerritoryMetadata{PreferredExtnPrefix: " x"}
	assert.Equal(t, " x", t2.ExtnPrefix())
}
