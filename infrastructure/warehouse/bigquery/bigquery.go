// Package bigquery wraps the warehouse used by the ad-spend pipeline: the
// reporting source table it reads and the destination table it replaces on
// every run.
package bigquery

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/autoloan/datasync/internal/config"
)

// insertBatchSize bounds each streaming insert request.
const insertBatchSize = 500

// Row is one warehouse row keyed by column name.
type Row map[string]bigquery.Value

// Save implements bigquery.ValueSaver so rows stream straight into the
// inserter without an intermediate struct schema.
func (r Row) Save() (map[string]bigquery.Value, string, error) {
	return r, "", nil
}

type Client interface {
	TableExists(ctx context.Context, table string) (bool, error)
	ReadTable(ctx context.Context, tableRef string) ([]Row, error)
	ReplaceTable(ctx context.Context, table string, schema bigquery.Schema, rows []Row) error
	Close() error
}

type warehouseClient struct {
	bq      *bigquery.Client
	project string
	dataset string
}

func NewClient(ctx context.Context, cfg config.Warehouse) (Client, error) {
	bq, err := bigquery.NewClient(
		ctx,
		cfg.Project,
		option.WithCredentialsFile(cfg.CredentialsFile),
	)
	if err != nil {
		return nil, fmt.Errorf("creating BigQuery client: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"project": cfg.Project,
		"dataset": cfg.Dataset,
	}).Info("BigQuery client connection established")

	return &warehouseClient{
		bq:      bq,
		project: cfg.Project,
		dataset: cfg.Dataset,
	}, nil
}

// TableExists checks the destination table's metadata; a 404 means the first
// run has not created it yet.
func (c *warehouseClient) TableExists(ctx context.Context, table string) (bool, error) {
	_, err := c.bq.Dataset(c.dataset).Table(table).Metadata(ctx)
	if err == nil {
		return true, nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return false, nil
	}

	return false, fmt.Errorf("checking table %s existence: %w", table, err)
}

// ReadTable runs SELECT * over a table reference (either "dataset.table" in
// this project or a fully qualified "project.dataset.table").
func (c *warehouseClient) ReadTable(ctx context.Context, tableRef string) ([]Row, error) {
	query := c.bq.Query(fmt.Sprintf("SELECT * FROM `%s`", tableRef))

	it, err := query.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", tableRef, err)
	}

	rows := make([]Row, 0)
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating rows of %s: %w", tableRef, err)
		}
		rows = append(rows, Row(row))
	}

	logrus.WithFields(logrus.Fields{
		"table": tableRef,
		"rows":  len(rows),
	}).Info("Read warehouse table")

	return rows, nil
}

// ReplaceTable drops and recreates the destination table with the given
// schema, then streams every row in. Full-table replace semantics: the
// previous contents never survive a successful run.
func (c *warehouseClient) ReplaceTable(ctx context.Context, table string, schema bigquery.Schema, rows []Row) error {
	tableRef := c.bq.Dataset(c.dataset).Table(table)

	if err := tableRef.Delete(ctx); err != nil {
		var apiErr *googleapi.Error
		if !errors.As(err, &apiErr) || apiErr.Code != 404 {
			return fmt.Errorf("deleting table %s: %w", table, err)
		}
	}

	if err := tableRef.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}

	inserter := tableRef.Inserter()
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		savers := make([]bigquery.ValueSaver, 0, end-start)
		for _, row := range rows[start:end] {
			savers = append(savers, row)
		}

		if err := inserter.Put(ctx, savers); err != nil {
			return fmt.Errorf("inserting rows into %s: %w", table, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"table": fmt.Sprintf("%s.%s.%s", c.project, c.dataset, table),
		"rows":  len(rows),
	}).Info("Replaced warehouse table")

	return nil
}

func (c *warehouseClient) Close() error {
	return c.bq.Close()
}
