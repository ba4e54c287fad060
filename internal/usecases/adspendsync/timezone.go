package adspendsync

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/domain"
)

const (
	// localDatetimeLayout is the naive timestamp composed from date_start and
	// the hour column.
	localDatetimeLayout = "2006-01-02T15:04:05"

	// serializedLayout is how aware timestamps are stored in the warehouse.
	serializedLayout = "2006-01-02T15:04:05-07:00"
)

// sentinelTime flags a record whose local timestamp could not be resolved.
// Downstream consumers treat year 1999 as "timezone unknown".
var sentinelTime = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

// ResolveTimezones attaches each record's account timezone, parses the
// composed local timestamp in that zone and converts it to the canonical
// zone. A record that fails to resolve gets the sentinel timestamp and its
// timezone string joins the returned error set; the batch itself never
// aborts on a per-record failure.
func ResolveTimezones(
	records []domain.AdSpendRecord,
	zones []domain.TimezoneEntry,
	canonicalZone string,
) ([]domain.AdSpendRecord, []string, error) {
	canonical, err := time.LoadLocation(canonicalZone)
	if err != nil {
		return nil, nil, fmt.Errorf("loading canonical timezone %q: %w", canonicalZone, err)
	}

	zoneByAccount := make(map[string]string, len(zones))
	for _, z := range zones {
		zoneByAccount[z.AccountID] = z.Timezone
	}

	resolved := make([]domain.AdSpendRecord, 0, len(records))
	errorSet := make(map[string]bool)

	for _, record := range records {
		record.Timezone = zoneByAccount[record.AccountID]

		local, err := parseLocalDatetime(record.SourceDatetime, record.Timezone)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"timezone":        record.Timezone,
				"source_datetime": record.SourceDatetime,
			}).Warn("Failed to parse record datetime, assigning sentinel timestamp")

			errorSet[record.Timezone] = true
			record.SourceDatetime = sentinelTime.Format(serializedLayout)
			record.PacificDatetime = sentinelTime.In(canonical).Format(serializedLayout)
			resolved = append(resolved, record)
			continue
		}

		record.SourceDatetime = local.Format(serializedLayout)
		record.PacificDatetime = local.In(canonical).Format(serializedLayout)
		resolved = append(resolved, record)
	}

	errorTimezones := make([]string, 0, len(errorSet))
	for tz := range errorSet {
		errorTimezones = append(errorTimezones, tz)
	}
	sort.Strings(errorTimezones)

	logrus.WithFields(logrus.Fields{
		"records":         len(resolved),
		"timezone_errors": len(errorTimezones),
	}).Info("Resolved record timezones")

	return resolved, errorTimezones, nil
}

func parseLocalDatetime(value, timezone string) (time.Time, error) {
	if timezone == "" {
		return time.Time{}, fmt.Errorf("blank timezone")
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}

	return time.ParseInLocation(localDatetimeLayout, value, loc)
}
