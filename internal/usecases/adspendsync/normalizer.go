package adspendsync

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"

	warehouse "github.com/autoloan/datasync/infrastructure/warehouse/bigquery"
	"github.com/autoloan/datasync/internal/domain"
)

// hourlyStatsColumn is the reporting source's name for the hour-range column.
const hourlyStatsColumn = "hourly_stats_aggregated_by_advertiser_time_zone"

// declaredColumns are the columns mapped onto AdSpendRecord fields; everything
// else rides along in Extra.
var declaredColumns = map[string]bool{
	"date_start":       true,
	"date_stop":        true,
	"account_id":       true,
	"ad_set_id":        true,
	"ad_set_name":      true,
	"campaign_name":    true,
	"hour":             true,
	"source_datetime":  true,
	"pacific_datetime": true,
	"timezone":         true,
	"amount_spend":     true,
}

// Normalize turns raw reporting-source rows into ad-spend records: column
// names lower-cased, the hour-range column renamed and reduced to its first
// half, source_datetime composed from date_start and hour, batch sorted by
// date_start.
func Normalize(rows []warehouse.Row) []domain.AdSpendRecord {
	records := FromRows(rows)

	for i := range records {
		if cut := strings.Index(records[i].Hour, " - "); cut >= 0 {
			records[i].Hour = records[i].Hour[:cut]
		}
		if records[i].Hour != "" {
			records[i].SourceDatetime = records[i].DateStart + "T" + records[i].Hour
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateStart < records[j].DateStart
	})

	logrus.WithField("records", len(records)).Info("Normalized reporting source rows")

	return records
}

// FromRows maps warehouse rows onto records without further transformation.
// Used for the destination table's historical rows, which are already in
// final shape.
func FromRows(rows []warehouse.Row) []domain.AdSpendRecord {
	records := make([]domain.AdSpendRecord, 0, len(rows))

	for _, row := range rows {
		record := domain.AdSpendRecord{}

		for name, value := range row {
			column := strings.ToLower(name)
			if column == hourlyStatsColumn {
				column = "hour"
			}

			switch column {
			case "date_start":
				record.DateStart = stringify(value)
			case "date_stop":
				record.DateStop = stringify(value)
			case "account_id":
				record.AccountID = stringify(value)
			case "ad_set_id":
				record.AdSetID = stringify(value)
			case "ad_set_name":
				record.AdSetName = stringify(value)
			case "campaign_name":
				record.CampaignName = stringify(value)
			case "hour":
				record.Hour = stringify(value)
			case "source_datetime":
				record.SourceDatetime = stringify(value)
			case "pacific_datetime":
				record.PacificDatetime = stringify(value)
			case "timezone":
				record.Timezone = stringify(value)
			case "amount_spend":
				record.AmountSpend = toFloat(value)
			default:
				if record.Extra == nil {
					record.Extra = make(map[string]bigquery.Value)
				}
				record.Extra[column] = value
			}
		}

		records = append(records, record)
	}

	return records
}

// stringify renders a warehouse cell as a string, covering the value types
// the BigQuery client hands back for STRING, DATE and TIMESTAMP columns.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case civil.Date:
		return v.String()
	case civil.DateTime:
		return v.String()
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

// toFloat coerces a spend cell to float64; unparseable values become zero
// with a warning rather than failing the batch.
func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logrus.WithField("value", v).Warn("Unparseable amount_spend value, coercing to zero")
			return 0
		}
		return parsed
	default:
		logrus.WithField("value", value).Warn("Unexpected amount_spend type, coercing to zero")
		return 0
	}
}
