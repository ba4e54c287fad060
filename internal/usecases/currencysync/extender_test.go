package currencysync

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoloan/datasync/internal/domain"
)

func TestExtendPlaceholders(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("appends horizon rows carrying last rates forward", func(t *testing.T) {
		batch := []domain.RateRecord{
			{Date: day(8), Rates: map[string]decimal.Decimal{"CAD": decimal.RequireFromString("1.35")}},
			{Date: day(9), Rates: map[string]decimal.Decimal{"CAD": decimal.RequireFromString("1.36")}},
		}

		extended := ExtendPlaceholders(batch, 2)

		require.Len(t, extended, 4)
		assert.True(t, day(10).Equal(extended[2].Date))
		assert.True(t, day(11).Equal(extended[3].Date))
		for _, placeholder := range extended[2:] {
			rate, ok := placeholder.Rate("CAD")
			require.True(t, ok)
			assert.Equal(t, "1.36", rate.String())
		}
	})

	t.Run("placeholder rates are copies, not aliases", func(t *testing.T) {
		batch := []domain.RateRecord{
			{Date: day(9), Rates: map[string]decimal.Decimal{"CAD": decimal.RequireFromString("1.36")}},
		}

		extended := ExtendPlaceholders(batch, 1)

		extended[1].Rates["CAD"] = decimal.Zero
		rate, ok := extended[0].Rate("CAD")
		require.True(t, ok)
		assert.Equal(t, "1.36", rate.String())
	})

	t.Run("non-positive horizon uses the default", func(t *testing.T) {
		batch := []domain.RateRecord{
			{Date: day(9), Rates: map[string]decimal.Decimal{"CAD": decimal.RequireFromString("1.36")}},
		}

		extended := ExtendPlaceholders(batch, 0)

		assert.Len(t, extended, 1+DefaultPlaceholderHorizonDays)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.Empty(t, ExtendPlaceholders(nil, 2))
	})
}
