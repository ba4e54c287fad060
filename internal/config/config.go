package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	CurrencyAPI  CurrencyAPI  `mapstructure:",squash"`
	Warehouse    Warehouse    `mapstructure:",squash"`
	Email        Email        `mapstructure:",squash"`
	HealthCheck  HealthCheck  `mapstructure:",squash"`
	CurrencySync CurrencySync `mapstructure:",squash"`
	AdSpendSync  AdSpendSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	RunOnce     bool   `mapstructure:"run_once"`
	AdminAPIKey string `mapstructure:"admin_api_key"`
	Timezone    string `mapstructure:"timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type CurrencyAPI struct {
	URL              string   `mapstructure:"currency_api_url"`
	Key              string   `mapstructure:"currency_api_key"`
	BaseCurrency     string   `mapstructure:"base_currency"`
	TargetCurrencies []string `mapstructure:"target_currencies"`
}

type Warehouse struct {
	CredentialsFile string `mapstructure:"gbq_credentials_path"`
	Project         string `mapstructure:"gbq_project"`
	Dataset         string `mapstructure:"gbq_dataset"`
	Table           string `mapstructure:"gbq_table"`
	SourceTable     string `mapstructure:"gbq_source_table"`
}

type Email struct {
	Sender   string `mapstructure:"email_sender"`
	Password string `mapstructure:"email_password"`
	Receiver string `mapstructure:"email_receiver"`
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
}

type HealthCheck struct {
	URL string `mapstructure:"health_check_url"`
}

type CurrencySync struct {
	CronSchedule string `mapstructure:"currency_sync_cron"`
	Enabled      bool   `mapstructure:"currency_sync_enabled"`
	TableName    string `mapstructure:"currency_table_name"`
	HorizonDays  int    `mapstructure:"currency_placeholder_horizon_days"`
}

type AdSpendSync struct {
	CronSchedule      string `mapstructure:"adspend_sync_cron"`
	Enabled           bool   `mapstructure:"adspend_sync_enabled"`
	CanonicalTimezone string `mapstructure:"adspend_canonical_timezone"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/datasync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("TARGET_CURRENCIES", "CAD,GBP,EUR,HKD")

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 465)

	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("RUN_ONCE", false)
	viper.SetDefault("ADMIN_API_KEY", "")

	viper.SetDefault("CURRENCY_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("CURRENCY_SYNC_ENABLED", true)
	viper.SetDefault("CURRENCY_PLACEHOLDER_HORIZON_DAYS", 2)

	viper.SetDefault("ADSPEND_SYNC_CRON", "0 7 * * *")
	viper.SetDefault("ADSPEND_SYNC_ENABLED", true)
	viper.SetDefault("ADSPEND_CANONICAL_TIMEZONE", "US/Pacific")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using environment variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	for i, c := range config.CurrencyAPI.TargetCurrencies {
		config.CurrencyAPI.TargetCurrencies[i] = strings.TrimSpace(c)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every missing required setting at once, before any I/O
// happens. Pipeline-specific settings are only required when that pipeline is
// enabled.
func (c *Config) Validate() error {
	var missing []string

	require := func(key, value string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	require("DATABASE_URL", c.Database.URL)
	require("HEALTH_CHECK_URL", c.HealthCheck.URL)

	if c.CurrencySync.Enabled {
		require("CURRENCY_API_URL", c.CurrencyAPI.URL)
		require("CURRENCY_API_KEY", c.CurrencyAPI.Key)
		require("CURRENCY_TABLE_NAME", c.CurrencySync.TableName)
		if len(c.CurrencyAPI.TargetCurrencies) == 0 {
			missing = append(missing, "TARGET_CURRENCIES")
		}
	}

	if c.AdSpendSync.Enabled {
		require("GBQ_CREDENTIALS_PATH", c.Warehouse.CredentialsFile)
		require("GBQ_PROJECT", c.Warehouse.Project)
		require("GBQ_DATASET", c.Warehouse.Dataset)
		require("GBQ_TABLE", c.Warehouse.Table)
		require("GBQ_SOURCE_TABLE", c.Warehouse.SourceTable)
		require("EMAIL_SENDER", c.Email.Sender)
		require("EMAIL_PASSWORD", c.Email.Password)
		require("EMAIL_RECEIVER", c.Email.Receiver)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// loadEnvFile loads a local .env file via godotenv when present.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env file from: ", location)
			return
		}
	}
}
