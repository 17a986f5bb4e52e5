package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// tableRepo is a generic accessor for one fixed-layout table. The only
// operations the format needs are a full scan and a bulk insert; both wrap
// storage failures with the table name and the underlying cause.
type tableRepo[T any] struct {
	db    *gorm.DB
	table string
}

func newTableRepo[T any](db *gorm.DB, table string) tableRepo[T] {
	return tableRepo[T]{db: db, table: table}
}

// readAll returns every row of the table.
func (r tableRepo[T]) readAll() ([]T, error) {
	var rows []T
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", r.table, err)
	}
	return rows, nil
}

// add bulk-inserts the given rows and returns how many were written.
func (r tableRepo[T]) add(rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	result := r.db.Create(&rows)
	if result.Error != nil {
		var sqliteErr sqlite3.Error
		if errors.As(result.Error, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return 0, fmt.Errorf("failed to insert %s rows, constraint violated: %w", r.table, result.Error)
		}
		return 0, fmt.Errorf("failed to insert %s rows: %w", r.table, result.Error)
	}
	return result.RowsAffected, nil
}
