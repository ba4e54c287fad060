package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database:    Database{URL: "localhost:5432/datasync"},
		HealthCheck: HealthCheck{URL: "https://hc.example.com/ping"},
		CurrencyAPI: CurrencyAPI{
			URL:              "https://api.currencyapi.com/v3/latest",
			Key:              "key",
			TargetCurrencies: []string{"CAD"},
		},
		Warehouse: Warehouse{
			CredentialsFile: "/etc/gbq.json",
			Project:         "proj",
			Dataset:         "ads",
			Table:           "adset_costs",
			SourceTable:     "proj.ads.hourly_source",
		},
		Email: Email{
			Sender:   "noreply@example.com",
			Password: "secret",
			Receiver: "ops@example.com",
		},
		CurrencySync: CurrencySync{Enabled: true, TableName: "usd_rates"},
		AdSpendSync:  AdSpendSync{Enabled: true},
	}
}

func TestValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("reports all missing variables at once", func(t *testing.T) {
		cfg := validConfig()
		cfg.CurrencyAPI.Key = ""
		cfg.Email.Receiver = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CURRENCY_API_KEY")
		assert.Contains(t, err.Error(), "EMAIL_RECEIVER")
	})

	t.Run("disabled pipeline settings are not required", func(t *testing.T) {
		cfg := validConfig()
		cfg.AdSpendSync.Enabled = false
		cfg.Warehouse = Warehouse{}
		cfg.Email = Email{}

		require.NoError(t, cfg.Validate())
	})

	t.Run("empty target currencies fail when currency sync is enabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.CurrencyAPI.TargetCurrencies = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TARGET_CURRENCIES")
	})
}
