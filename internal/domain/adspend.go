package domain

import "cloud.google.com/go/bigquery"

// AdSpendRecord is one hourly ad-set cost row flowing from the reporting
// source into the warehouse. Extra carries source columns outside the declared
// schema through to the sink untouched.
type AdSpendRecord struct {
	DateStart       string
	DateStop        string
	AccountID       string
	AdSetID         string
	AdSetName       string
	CampaignName    string
	Hour            string
	SourceDatetime  string
	PacificDatetime string
	Timezone        string
	AmountSpend     float64
	Extra           map[string]bigquery.Value
}

// DedupKey identifies a row within the destination table. Two rows with the
// same key describe the same hour of the same ad set.
func (r AdSpendRecord) DedupKey() string {
	return r.SourceDatetime + "|" + r.AccountID + "|" + r.AdSetID
}

// TimezoneEntry is one row of the account timezone lookup table. Timezone is
// already reduced to the trailing token of the raw column value.
type TimezoneEntry struct {
	AccountID string
	Timezone  string
}
