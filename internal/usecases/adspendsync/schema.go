package adspendsync

import (
	"sort"

	"cloud.google.com/go/bigquery"

	warehouse "github.com/autoloan/datasync/infrastructure/warehouse/bigquery"
	"github.com/autoloan/datasync/internal/domain"
)

// ToRows renders records back into warehouse rows for the destination table.
func ToRows(records []domain.AdSpendRecord) []warehouse.Row {
	rows := make([]warehouse.Row, 0, len(records))

	for _, r := range records {
		row := warehouse.Row{
			"date_start":       r.DateStart,
			"date_stop":        r.DateStop,
			"account_id":       r.AccountID,
			"ad_set_id":        r.AdSetID,
			"ad_set_name":      r.AdSetName,
			"campaign_name":    r.CampaignName,
			"hour":             r.Hour,
			"source_datetime":  r.SourceDatetime,
			"pacific_datetime": r.PacificDatetime,
			"timezone":         r.Timezone,
			"amount_spend":     r.AmountSpend,
		}
		for column, value := range r.Extra {
			row[column] = value
		}
		rows = append(rows, row)
	}

	return rows
}

// Schema declares the destination table. date_start and date_stop are DATE;
// columns outside the declared set are typed from the first record carrying
// them.
func Schema(records []domain.AdSpendRecord) bigquery.Schema {
	schema := bigquery.Schema{
		{Name: "date_start", Type: bigquery.DateFieldType},
		{Name: "date_stop", Type: bigquery.DateFieldType},
		{Name: "account_id", Type: bigquery.StringFieldType},
		{Name: "ad_set_id", Type: bigquery.StringFieldType},
		{Name: "ad_set_name", Type: bigquery.StringFieldType},
		{Name: "campaign_name", Type: bigquery.StringFieldType},
		{Name: "hour", Type: bigquery.StringFieldType},
		{Name: "source_datetime", Type: bigquery.StringFieldType},
		{Name: "pacific_datetime", Type: bigquery.StringFieldType},
		{Name: "timezone", Type: bigquery.StringFieldType},
		{Name: "amount_spend", Type: bigquery.FloatFieldType},
	}

	extraTypes := make(map[string]bigquery.FieldType)
	for _, r := range records {
		for column, value := range r.Extra {
			if _, seen := extraTypes[column]; seen {
				continue
			}
			extraTypes[column] = fieldType(value)
		}
	}

	extraColumns := make([]string, 0, len(extraTypes))
	for column := range extraTypes {
		extraColumns = append(extraColumns, column)
	}
	sort.Strings(extraColumns)

	for _, column := range extraColumns {
		schema = append(schema, &bigquery.FieldSchema{Name: column, Type: extraTypes[column]})
	}

	return schema
}

func fieldType(value bigquery.Value) bigquery.FieldType {
	switch value.(type) {
	case float64:
		return bigquery.FloatFieldType
	case int64:
		return bigquery.IntegerFieldType
	case bool:
		return bigquery.BooleanFieldType
	default:
		return bigquery.StringFieldType
	}
}
