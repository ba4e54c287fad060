package currencysync

import (
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/domain"
)

// Validate is the last gate before the write: a read-only structural check of
// the final batch. It rejects an empty batch, a record without a date and a
// configured currency absent from every record. Null cells in a present
// currency column are warned about, not rejected.
func Validate(batch []domain.RateRecord, currencies []string) bool {
	if len(batch) == 0 {
		logrus.Error("Rate batch is empty")
		return false
	}

	for i, record := range batch {
		if record.Date.IsZero() {
			logrus.WithField("row", i).Error("Rate record has no date")
			return false
		}
	}

	valid := true
	for _, currency := range currencies {
		nullCount := 0
		for _, record := range batch {
			if _, ok := record.Rate(currency); !ok {
				nullCount++
			}
		}

		if nullCount == len(batch) {
			logrus.WithField("currency", currency).Error("Configured currency column missing from batch")
			valid = false
			continue
		}

		if nullCount > 0 {
			logrus.WithFields(logrus.Fields{
				"currency": currency,
				"nulls":    nullCount,
			}).Warn("Found null values in currency column")
		}
	}

	if valid {
		logrus.Info("Rate batch validation passed")
	}

	return valid
}
