package reconcile

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoloan/datasync/internal/domain"
)

func rateOpts() Options[domain.RateRecord] {
	return Options[domain.RateRecord]{
		Key: func(r domain.RateRecord) (string, error) {
			if r.Date.IsZero() {
				return "", fmt.Errorf("record has no date")
			}
			return r.Date.Format(time.DateOnly), nil
		},
		SortKey: func(r domain.RateRecord) string {
			return r.Date.Format(time.DateOnly)
		},
		Policy: NewestWins,
	}
}

func rateRecord(date string, usdCad float64) domain.RateRecord {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.RateRecord{
		Date:  d,
		Rates: map[string]decimal.Decimal{"USD_CAD": decimal.NewFromFloat(usdCad)},
	}
}

func TestMerge_RatePolicy(t *testing.T) {
	tests := []struct {
		name       string
		historical []domain.RateRecord
		incoming   []domain.RateRecord
		validate   func(t *testing.T, merged []domain.RateRecord)
	}{
		{
			name: "disjoint dates keep every row sorted ascending",
			historical: []domain.RateRecord{
				rateRecord("2024-01-03", 1.37),
				rateRecord("2024-01-01", 1.35),
			},
			incoming: []domain.RateRecord{
				rateRecord("2024-01-02", 1.36),
			},
			validate: func(t *testing.T, merged []domain.RateRecord) {
				require.Len(t, merged, 3)
				assert.Equal(t, "2024-01-01", merged[0].Date.Format(time.DateOnly))
				assert.Equal(t, "2024-01-02", merged[1].Date.Format(time.DateOnly))
				assert.Equal(t, "2024-01-03", merged[2].Date.Format(time.DateOnly))
			},
		},
		{
			name: "shared date keeps the newly fetched value",
			historical: []domain.RateRecord{
				rateRecord("2024-01-01", 1.35),
			},
			incoming: []domain.RateRecord{
				rateRecord("2024-01-01", 1.36),
			},
			validate: func(t *testing.T, merged []domain.RateRecord) {
				require.Len(t, merged, 1)
				rate, ok := merged[0].Rate("USD_CAD")
				require.True(t, ok)
				assert.True(t, rate.Equal(decimal.NewFromFloat(1.36)), "new value must win, got %s", rate)
			},
		},
		{
			name: "merging a batch with itself is idempotent",
			historical: []domain.RateRecord{
				rateRecord("2024-01-01", 1.35),
				rateRecord("2024-01-02", 1.36),
			},
			incoming: []domain.RateRecord{
				rateRecord("2024-01-01", 1.35),
				rateRecord("2024-01-02", 1.36),
			},
			validate: func(t *testing.T, merged []domain.RateRecord) {
				require.Len(t, merged, 2)
				assert.Equal(t, "2024-01-01", merged[0].Date.Format(time.DateOnly))
				assert.Equal(t, "2024-01-02", merged[1].Date.Format(time.DateOnly))
			},
		},
		{
			name:       "empty historical batch passes the incoming batch through",
			historical: nil,
			incoming: []domain.RateRecord{
				rateRecord("2024-01-05", 1.40),
			},
			validate: func(t *testing.T, merged []domain.RateRecord) {
				require.Len(t, merged, 1)
				assert.Equal(t, "2024-01-05", merged[0].Date.Format(time.DateOnly))
			},
		},
		{
			name: "duplicate dates inside the incoming batch keep the last",
			historical: []domain.RateRecord{
				rateRecord("2024-01-01", 1.30),
			},
			incoming: []domain.RateRecord{
				rateRecord("2024-01-01", 1.31),
				rateRecord("2024-01-01", 1.32),
			},
			validate: func(t *testing.T, merged []domain.RateRecord) {
				require.Len(t, merged, 1)
				rate, _ := merged[0].Rate("USD_CAD")
				assert.True(t, rate.Equal(decimal.NewFromFloat(1.32)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(tt.historical, tt.incoming, rateOpts())
			require.NoError(t, err)
			assertNoDuplicateKeys(t, merged)
			tt.validate(t, merged)
		})
	}
}

func TestMerge_KeyErrorAbortsMerge(t *testing.T) {
	historical := []domain.RateRecord{rateRecord("2024-01-01", 1.35)}
	incoming := []domain.RateRecord{{}} // no date

	merged, err := Merge(historical, incoming, rateOpts())
	require.Error(t, err)
	assert.Nil(t, merged)
	assert.Contains(t, err.Error(), "incoming record")
}

func TestMerge_UnknownPolicy(t *testing.T) {
	opts := rateOpts()
	opts.Policy = Policy("coin-flip")

	_, err := Merge(nil, []domain.RateRecord{rateRecord("2024-01-01", 1.35)}, opts)
	require.Error(t, err)
}

func adSpendOpts() Options[domain.AdSpendRecord] {
	return Options[domain.AdSpendRecord]{
		Key: func(r domain.AdSpendRecord) (string, error) {
			return r.DedupKey(), nil
		},
		SortKey: func(r domain.AdSpendRecord) string {
			return r.SourceDatetime
		},
		Policy: PrimarySource,
	}
}

func adSpendRecord(sourceDatetime, accountID, adSetID string, spend float64) domain.AdSpendRecord {
	return domain.AdSpendRecord{
		SourceDatetime: sourceDatetime,
		AccountID:      accountID,
		AdSetID:        adSetID,
		AmountSpend:    spend,
	}
}

func TestMerge_AdSpendPolicy(t *testing.T) {
	tests := []struct {
		name       string
		historical []domain.AdSpendRecord
		incoming   []domain.AdSpendRecord
		validate   func(t *testing.T, merged []domain.AdSpendRecord)
	}{
		{
			name: "primary source wins over historical for the same key",
			historical: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 99.0),
			},
			incoming: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 42.5),
			},
			validate: func(t *testing.T, merged []domain.AdSpendRecord) {
				require.Len(t, merged, 1)
				assert.Equal(t, 42.5, merged[0].AmountSpend)
			},
		},
		{
			name: "historical rows without a primary counterpart survive",
			historical: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T09:00:00", "acc1", "set1", 10.0),
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 11.0),
			},
			incoming: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 12.0),
			},
			validate: func(t *testing.T, merged []domain.AdSpendRecord) {
				require.Len(t, merged, 2)
				assert.Equal(t, 10.0, merged[0].AmountSpend)
				assert.Equal(t, 12.0, merged[1].AmountSpend)
			},
		},
		{
			name: "output sorted ascending by source datetime",
			historical: []domain.AdSpendRecord{
				adSpendRecord("2024-03-02T00:00:00", "acc1", "set1", 1.0),
			},
			incoming: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T23:00:00", "acc2", "set2", 2.0),
			},
			validate: func(t *testing.T, merged []domain.AdSpendRecord) {
				require.Len(t, merged, 2)
				assert.Equal(t, "2024-03-01T23:00:00", merged[0].SourceDatetime)
				assert.Equal(t, "2024-03-02T00:00:00", merged[1].SourceDatetime)
			},
		},
		{
			name: "first primary occurrence wins among primary duplicates",
			historical: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 1.0),
			},
			incoming: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 2.0),
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 3.0),
			},
			validate: func(t *testing.T, merged []domain.AdSpendRecord) {
				require.Len(t, merged, 1)
				assert.Equal(t, 2.0, merged[0].AmountSpend)
			},
		},
		{
			name: "rows differing in any key column stay separate",
			historical: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set1", 1.0),
			},
			incoming: []domain.AdSpendRecord{
				adSpendRecord("2024-03-01T10:00:00", "acc1", "set2", 2.0),
				adSpendRecord("2024-03-01T10:00:00", "acc2", "set1", 3.0),
			},
			validate: func(t *testing.T, merged []domain.AdSpendRecord) {
				assert.Len(t, merged, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(tt.historical, tt.incoming, adSpendOpts())
			require.NoError(t, err)
			assert.LessOrEqual(t, len(merged), len(tt.historical)+len(tt.incoming))
			tt.validate(t, merged)
		})
	}
}

func assertNoDuplicateKeys(t *testing.T, merged []domain.RateRecord) {
	t.Helper()
	seen := make(map[string]bool, len(merged))
	for _, r := range merged {
		key := r.Date.Format(time.DateOnly)
		assert.False(t, seen[key], "duplicate date %s in merged batch", key)
		seen[key] = true
	}
}
