package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/infrastructure/database/postgres"
	"github.com/autoloan/datasync/internal/domain"
)

const accountTimezonesTable = "account_timezones"

type TimezoneRepository interface {
	List(ctx context.Context) ([]domain.TimezoneEntry, error)
}

type timezoneRepository struct {
	conn postgres.Conn
}

func NewTimezoneRepository(conn postgres.Conn) TimezoneRepository {
	return &timezoneRepository{
		conn: conn,
	}
}

// List returns one timezone entry per ad account. Raw column values carry a
// descriptive prefix ("(GMT-08:00) Pacific Time US/Pacific"), so only the
// trailing whitespace-delimited token is kept.
func (r *timezoneRepository) List(ctx context.Context) ([]domain.TimezoneEntry, error) {
	query, args, err := squirrel.
		Select("adaccount_id", "timezone").
		From(accountTimezonesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building timezone query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying account timezones: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TimezoneEntry, 0)
	for rows.Next() {
		var entry domain.TimezoneEntry
		if err := rows.Scan(&entry.AccountID, &entry.Timezone); err != nil {
			return nil, fmt.Errorf("scanning timezone entry: %w", err)
		}

		entry.Timezone = trailingToken(entry.Timezone)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timezone rows: %w", err)
	}

	logrus.WithField("records", len(entries)).Info("Retrieved account timezone records")

	return entries, nil
}

func trailingToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
