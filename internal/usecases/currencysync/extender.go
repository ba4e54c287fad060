package currencysync

import (
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/domain"
)

// DefaultPlaceholderHorizonDays keeps rows for "today" and "tomorrow" present
// before the next real fetch lands.
const DefaultPlaceholderHorizonDays = 2

// ExtendPlaceholders appends horizonDays rows after the last record, carrying
// its rates forward as a best-effort estimate. The input batch must already be
// sorted ascending by date. An empty batch is a logged no-op.
func ExtendPlaceholders(batch []domain.RateRecord, horizonDays int) []domain.RateRecord {
	if len(batch) == 0 {
		logrus.Warn("Cannot add future placeholders to an empty batch")
		return batch
	}

	if horizonDays <= 0 {
		horizonDays = DefaultPlaceholderHorizonDays
	}

	last := batch[len(batch)-1]
	extended := make([]domain.RateRecord, len(batch), len(batch)+horizonDays)
	copy(extended, batch)

	for i := 1; i <= horizonDays; i++ {
		extended = append(extended, domain.RateRecord{
			Date:  last.Date.AddDate(0, 0, i),
			Rates: last.CloneRates(),
		})
	}

	logrus.WithField("placeholder_rows", horizonDays).Info("Added future placeholder rows")

	return extended
}
