package currencyapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// LatestRatesResponse is the raw API payload. Data values are either a plain
// scalar or a nested {"value": scalar} object depending on the API plan, so
// they stay raw until the parser flattens them.
type LatestRatesResponse struct {
	Data map[string]json.RawMessage `json:"data"`
	Meta ResponseMeta               `json:"meta"`
}

type ResponseMeta struct {
	LastUpdatedAt string `json:"last_updated_at"`
}

func (c *CurrencyClient) GetLatestRates() (*LatestRatesResponse, error) {
	params := url.Values{}
	params.Add("apikey", c.Cfg.CurrencyAPI.Key)
	params.Add("base_currency", c.Cfg.CurrencyAPI.BaseCurrency)
	params.Add("currencies", strings.Join(c.Cfg.CurrencyAPI.TargetCurrencies, ","))

	requestURL := c.Cfg.CurrencyAPI.URL + "?" + params.Encode()

	logrus.WithFields(logrus.Fields{
		"base_currency": c.Cfg.CurrencyAPI.BaseCurrency,
		"currencies":    strings.Join(c.Cfg.CurrencyAPI.TargetCurrencies, ","),
	}).Info("Fetching latest exchange rates")

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Error building rate API request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Error calling rate API")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rate API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API returned status %s", resp.Status)
	}

	var response LatestRatesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Error decoding rate API JSON")
		return nil, fmt.Errorf("decoding rate API response: %w", err)
	}

	logrus.Info("Successfully fetched exchange rate data from API")

	return &response, nil
}
