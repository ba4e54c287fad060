package currencyapi

import (
	"net/http"
	"time"

	"github.com/autoloan/datasync/internal/config"
)

// requestTimeout bounds every call to the rate API so a hung upstream fails
// fast instead of blocking the run.
const requestTimeout = 30 * time.Second

type Client interface {
	GetLatestRates() (*LatestRatesResponse, error)
}

type CurrencyClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &CurrencyClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}
