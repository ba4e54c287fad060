package adspendsync

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoloan/datasync/internal/domain"
)

func TestSchema(t *testing.T) {
	records := []domain.AdSpendRecord{
		{
			DateStart: "2024-05-08",
			Extra: map[string]bigquery.Value{
				"impressions": int64(1000),
				"ctr":         0.025,
			},
		},
		{
			DateStart: "2024-05-09",
			Extra: map[string]bigquery.Value{
				"placement": "feed",
			},
		},
	}

	schema := Schema(records)
	byName := make(map[string]bigquery.FieldType, len(schema))
	for _, field := range schema {
		byName[field.Name] = field.Type
	}

	assert.Equal(t, bigquery.DateFieldType, byName["date_start"])
	assert.Equal(t, bigquery.DateFieldType, byName["date_stop"])
	assert.Equal(t, bigquery.FloatFieldType, byName["amount_spend"])
	assert.Equal(t, bigquery.StringFieldType, byName["source_datetime"])

	// Extra columns typed from their values and appended deterministically.
	assert.Equal(t, bigquery.IntegerFieldType, byName["impressions"])
	assert.Equal(t, bigquery.FloatFieldType, byName["ctr"])
	assert.Equal(t, bigquery.StringFieldType, byName["placement"])

	require.Len(t, schema, 14)
	assert.Equal(t, "ctr", schema[11].Name)
	assert.Equal(t, "impressions", schema[12].Name)
	assert.Equal(t, "placement", schema[13].Name)
}

func TestToRowsRoundTrip(t *testing.T) {
	records := []domain.AdSpendRecord{
		{
			DateStart:       "2024-05-08",
			DateStop:        "2024-05-08",
			AccountID:       "act_1",
			AdSetID:         "119",
			SourceDatetime:  "2024-05-08T09:00:00-07:00",
			PacificDatetime: "2024-05-08T09:00:00-07:00",
			Timezone:        "America/Los_Angeles",
			AmountSpend:     3.5,
			Extra:           map[string]bigquery.Value{"impressions": int64(1000)},
		},
	}

	rows := ToRows(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "act_1", rows[0]["account_id"])
	assert.Equal(t, 3.5, rows[0]["amount_spend"])
	assert.Equal(t, int64(1000), rows[0]["impressions"])
}
