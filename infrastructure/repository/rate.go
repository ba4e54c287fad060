package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/database/postgres"
	"github.com/autoloan/datasync/internal/domain"
)

const (
	dateColumn = "Date"

	// undefinedTable is the Postgres error code for a missing relation. The
	// rate table only exists after the first successful replace.
	undefinedTable = "42P01"
)

type RateRepository interface {
	FetchHistorical(ctx context.Context, cutoff time.Time) ([]domain.RateRecord, error)
	Replace(ctx context.Context, batch []domain.RateRecord, currencies []string) error
}

type rateRepository struct {
	conn  postgres.Conn
	table string
}

func NewRateRepository(conn postgres.Conn, table string) RateRepository {
	return &rateRepository{
		conn:  conn,
		table: table,
	}
}

// FetchHistorical returns every stored rate row up to and including cutoff,
// sorted ascending by date. A missing table (first run) yields an empty batch.
func (r *rateRepository) FetchHistorical(ctx context.Context, cutoff time.Time) ([]domain.RateRecord, error) {
	query, args, err := squirrel.
		Select("*").
		From(pq.QuoteIdentifier(r.table)).
		Where(squirrel.LtOrEq{pq.QuoteIdentifier(dateColumn): cutoff.Format(time.DateOnly)}).
		OrderBy(pq.QuoteIdentifier(dateColumn) + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building historical rates query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == undefinedTable {
			logrus.WithField("table", r.table).Warn("Rate table does not exist yet, starting from an empty historical batch")
			return []domain.RateRecord{}, nil
		}
		return nil, fmt.Errorf("querying historical rates: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading rate table columns: %w", err)
	}

	records := make([]domain.RateRecord, 0)
	for rows.Next() {
		record, err := scanRateRecord(rows, columns)
		if err != nil {
			return nil, fmt.Errorf("scanning rate record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rate rows: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"cutoff":  cutoff.Format(time.DateOnly),
	}).Info("Retrieved historical rate records")

	return records, nil
}

// Replace swaps the whole rate table for the given batch: one DATE column plus
// one NUMERIC(30,5) column per configured currency. Either the full batch
// lands or nothing does.
func (r *rateRepository) Replace(ctx context.Context, batch []domain.RateRecord, currencies []string) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", pq.QuoteIdentifier(r.table))); err != nil {
			return fmt.Errorf("dropping rate table: %w", err)
		}

		columnDefs := []string{pq.QuoteIdentifier(dateColumn) + " DATE"}
		for _, currency := range currencies {
			columnDefs = append(columnDefs, pq.QuoteIdentifier(currency)+" NUMERIC(30,5)")
		}

		createStmt := fmt.Sprintf(
			"CREATE TABLE %s (%s)",
			pq.QuoteIdentifier(r.table),
			strings.Join(columnDefs, ", "),
		)
		if _, err := tx.ExecContext(ctx, createStmt); err != nil {
			return fmt.Errorf("creating rate table: %w", err)
		}

		insertColumns := append([]string{pq.QuoteIdentifier(dateColumn)}, quoteAll(currencies)...)
		builder := squirrel.StatementBuilder.
			Insert(pq.QuoteIdentifier(r.table)).
			Columns(insertColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range batch {
			values := []interface{}{record.Date.Format(time.DateOnly)}
			for _, currency := range currencies {
				if rate, ok := record.Rate(currency); ok {
					values = append(values, rate.String())
				} else {
					values = append(values, nil)
				}
			}
			builder = builder.Values(values...)
		}

		insertStmt, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("building rate insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertStmt, args...); err != nil {
			return fmt.Errorf("inserting rate records: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"records": len(batch),
		"table":   r.table,
	}).Info("Replaced rate table")

	return nil
}

func scanRateRecord(rows *sql.Rows, columns []string) (domain.RateRecord, error) {
	values := make([]interface{}, len(columns))
	for i := range values {
		values[i] = new(sql.NullString)
	}

	var date time.Time
	for i, col := range columns {
		if col == dateColumn {
			values[i] = &date
		}
	}

	if err := rows.Scan(values...); err != nil {
		return domain.RateRecord{}, err
	}

	record := domain.RateRecord{
		Date:  date,
		Rates: make(map[string]decimal.Decimal, len(columns)-1),
	}

	for i, col := range columns {
		if col == dateColumn {
			continue
		}

		cell := values[i].(*sql.NullString)
		if !cell.Valid {
			continue
		}

		rate, err := decimal.NewFromString(cell.String)
		if err != nil {
			return domain.RateRecord{}, fmt.Errorf("parsing %s value %q: %w", col, cell.String, err)
		}
		record.Rates[col] = rate
	}

	return record, nil
}

func quoteAll(identifiers []string) []string {
	quoted := make([]string, len(identifiers))
	for i, id := range identifiers {
		quoted[i] = pq.QuoteIdentifier(id)
	}
	return quoted
}
