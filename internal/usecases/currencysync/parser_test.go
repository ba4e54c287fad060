package currencysync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoloan/datasync/infrastructure/integrator/currencyapi"
)

func TestParseLatestRates(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		resp     *currencyapi.LatestRatesResponse
		wantDate time.Time
		wantRate map[string]string
		wantErr  bool
	}{
		{
			name: "nested value objects",
			resp: &currencyapi.LatestRatesResponse{
				Data: map[string]json.RawMessage{
					"CAD": json.RawMessage(`{"code":"CAD","value":1.36059}`),
					"EUR": json.RawMessage(`{"code":"EUR","value":0.92}`),
				},
				Meta: currencyapi.ResponseMeta{LastUpdatedAt: "2024-05-09T23:59:59Z"},
			},
			wantDate: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
			wantRate: map[string]string{"CAD": "1.36059", "EUR": "0.92"},
		},
		{
			name: "flat scalar values",
			resp: &currencyapi.LatestRatesResponse{
				Data: map[string]json.RawMessage{
					"GBP": json.RawMessage(`0.79315`),
					"HKD": json.RawMessage(`"7.8102"`),
				},
				Meta: currencyapi.ResponseMeta{LastUpdatedAt: "2024-05-09T23:59:59Z"},
			},
			wantDate: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
			wantRate: map[string]string{"GBP": "0.79315", "HKD": "7.8102"},
		},
		{
			name: "missing timestamp falls back to current date",
			resp: &currencyapi.LatestRatesResponse{
				Data: map[string]json.RawMessage{
					"CAD": json.RawMessage(`1.36`),
				},
			},
			wantDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			wantRate: map[string]string{"CAD": "1.36"},
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
		{
			name: "no data section",
			resp: &currencyapi.LatestRatesResponse{
				Meta: currencyapi.ResponseMeta{LastUpdatedAt: "2024-05-09T23:59:59Z"},
			},
			wantErr: true,
		},
		{
			name: "unparseable rate value",
			resp: &currencyapi.LatestRatesResponse{
				Data: map[string]json.RawMessage{
					"CAD": json.RawMessage(`[1.36]`),
				},
				Meta: currencyapi.ResponseMeta{LastUpdatedAt: "2024-05-09T23:59:59Z"},
			},
			wantErr: true,
		},
		{
			name: "malformed timestamp",
			resp: &currencyapi.LatestRatesResponse{
				Data: map[string]json.RawMessage{
					"CAD": json.RawMessage(`1.36`),
				},
				Meta: currencyapi.ResponseMeta{LastUpdatedAt: "yesterday"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := ParseLatestRates(tt.resp, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat))
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantDate.Equal(record.Date), "got date %s", record.Date)
			require.Len(t, record.Rates, len(tt.wantRate))
			for code, want := range tt.wantRate {
				got, ok := record.Rate(code)
				require.True(t, ok, "currency %s missing", code)
				assert.True(t, got.Equal(decimal.RequireFromString(want)), "currency %s: got %s", code, got)
			}
		})
	}
}

func TestParseRateValuePrecision(t *testing.T) {
	// Values must survive the trip without float rounding.
	value, err := parseRateValue(json.RawMessage(`{"value":7.81021}`))
	require.NoError(t, err)
	assert.Equal(t, "7.81021", value.String())
}
