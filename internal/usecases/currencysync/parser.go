package currencysync

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/integrator/currencyapi"
	"github.com/autoloan/datasync/internal/domain"
)

// ErrInvalidFormat marks an API payload the parser cannot extract rates from.
var ErrInvalidFormat = errors.New("invalid rate API response format")

// ParseLatestRates flattens the API response into a single rate record. The
// data section supports both the nested {"value": x} and the pre-flattened
// scalar shape. When meta.last_updated_at is absent the record is dated with
// the current calendar date, which is degraded but non-fatal.
func ParseLatestRates(resp *currencyapi.LatestRatesResponse, now time.Time) (domain.RateRecord, error) {
	if resp == nil || resp.Data == nil {
		return domain.RateRecord{}, errors.Wrap(ErrInvalidFormat, "response has no data section")
	}

	rates := make(map[string]decimal.Decimal, len(resp.Data))
	for code, raw := range resp.Data {
		value, err := parseRateValue(raw)
		if err != nil {
			return domain.RateRecord{}, errors.Wrapf(ErrInvalidFormat, "currency %s: %v", code, err)
		}
		rates[code] = value
	}

	date, err := recordDate(resp.Meta.LastUpdatedAt, now)
	if err != nil {
		return domain.RateRecord{}, err
	}

	logrus.WithField("date", date.Format(time.DateOnly)).Info("Parsed rate API response")

	return domain.RateRecord{Date: date, Rates: rates}, nil
}

// parseRateValue accepts {"value": 1.36}, 1.36 and "1.36".
func parseRateValue(raw json.RawMessage) (decimal.Decimal, error) {
	var nested struct {
		Value *json.Number `json:"value"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Value != nil {
		return decimal.NewFromString(nested.Value.String())
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return decimal.NewFromString(number.String())
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return decimal.NewFromString(text)
	}

	return decimal.Decimal{}, errors.Errorf("unsupported rate value %s", string(raw))
}

func recordDate(lastUpdatedAt string, now time.Time) (time.Time, error) {
	if lastUpdatedAt == "" {
		logrus.Warn("No timestamp in rate API response, using current date")
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	datePart := strings.SplitN(lastUpdatedAt, "T", 2)[0]
	date, err := time.Parse(time.DateOnly, datePart)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidFormat, "meta.last_updated_at %q: %v", lastUpdatedAt, err)
	}

	return date, nil
}
