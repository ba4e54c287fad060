package adspendsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoloan/datasync/internal/domain"
)

func TestResolveTimezones(t *testing.T) {
	zones := []domain.TimezoneEntry{
		{AccountID: "act_ny", Timezone: "America/New_York"},
		{AccountID: "act_la", Timezone: "America/Los_Angeles"},
		{AccountID: "act_bad", Timezone: "Not/AZone"},
	}

	records := []domain.AdSpendRecord{
		{AccountID: "act_ny", SourceDatetime: "2024-05-08T09:00:00"},
		{AccountID: "act_la", SourceDatetime: "2024-05-08T09:00:00"},
		{AccountID: "act_bad", SourceDatetime: "2024-05-08T09:00:00"},
		{AccountID: "act_unknown", SourceDatetime: "2024-05-08T09:00:00"},
	}

	resolved, errorTimezones, err := ResolveTimezones(records, zones, "US/Pacific")
	require.NoError(t, err)
	require.Len(t, resolved, 4)

	// New York morning converted to the canonical Pacific zone.
	assert.Equal(t, "America/New_York", resolved[0].Timezone)
	assert.Equal(t, "2024-05-08T09:00:00-04:00", resolved[0].SourceDatetime)
	assert.Equal(t, "2024-05-08T06:00:00-07:00", resolved[0].PacificDatetime)

	// A record already in the canonical zone keeps its wall clock.
	assert.Equal(t, "2024-05-08T09:00:00-07:00", resolved[1].SourceDatetime)
	assert.Equal(t, "2024-05-08T09:00:00-07:00", resolved[1].PacificDatetime)

	// Unknown zone and missing account both get the sentinel timestamp.
	for _, failed := range resolved[2:] {
		assert.Equal(t, "1999-01-01T00:00:00+00:00", failed.SourceDatetime)
		assert.Equal(t, "1998-12-31T16:00:00-08:00", failed.PacificDatetime)
	}

	// Error set is deduplicated, sorted, and includes the blank timezone of
	// accounts absent from the mapping table.
	assert.Equal(t, []string{"", "Not/AZone"}, errorTimezones)
}

func TestResolveTimezonesDedupesErrorSet(t *testing.T) {
	zones := []domain.TimezoneEntry{
		{AccountID: "act_bad", Timezone: "Not/AZone"},
	}
	records := []domain.AdSpendRecord{
		{AccountID: "act_bad", SourceDatetime: "2024-05-08T09:00:00"},
		{AccountID: "act_bad", SourceDatetime: "2024-05-08T10:00:00"},
	}

	_, errorTimezones, err := ResolveTimezones(records, zones, "US/Pacific")
	require.NoError(t, err)
	assert.Equal(t, []string{"Not/AZone"}, errorTimezones)
}

func TestResolveTimezonesBadCanonicalZone(t *testing.T) {
	_, _, err := ResolveTimezones(nil, nil, "Not/AZone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical timezone")
}

func TestResolveTimezonesMalformedDatetime(t *testing.T) {
	zones := []domain.TimezoneEntry{
		{AccountID: "act_ny", Timezone: "America/New_York"},
	}
	records := []domain.AdSpendRecord{
		{AccountID: "act_ny", SourceDatetime: "garbage"},
	}

	resolved, errorTimezones, err := ResolveTimezones(records, zones, "US/Pacific")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "1999-01-01T00:00:00+00:00", resolved[0].SourceDatetime)
	assert.Equal(t, []string{"America/New_York"}, errorTimezones)
}
