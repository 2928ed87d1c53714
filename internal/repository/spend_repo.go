package repository

import (
	"database/sql"
	"fmt"

	"github.com/spendlens/spendlens/internal/domain"
)

// sqlColumns maps declared dataset columns onto their storage columns.
// Group and filter queries only accept columns present here.
var sqlColumns = map[string]string{
	domain.ColSupplier:  "supplier",
	domain.ColCommodity: "commodity",
	domain.ColRegion:    "region",
	domain.ColMonth:     "month",
}

// SpendRepository handles spend dataset persistence
type SpendRepository struct {
	db *DB
}

// NewSpendRepository creates a new spend repository
func NewSpendRepository(db *DB) *SpendRepository {
	return &SpendRepository{db: db}
}

// Count returns the number of stored records
func (r *SpendRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM spend_records`).Scan(&count)
	return count, err
}

// InsertBatch stores records in one transaction, preserving order
func (r *SpendRepository) InsertBatch(records []domain.SpendRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO spend_records (supplier, commodity, region, month, spend_usd)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Supplier, rec.Commodity, rec.Region, rec.Month, rec.SpendUSD); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// All retrieves every record in insertion order
func (r *SpendRepository) All() ([]domain.SpendRecord, error) {
	rows, err := r.db.Query(`
		SELECT supplier, commodity, region, month, spend_usd
		FROM spend_records ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SpendRecord
	for rows.Next() {
		var rec domain.SpendRecord
		if err := rows.Scan(&rec.Supplier, &rec.Commodity, &rec.Region, &rec.Month, &rec.SpendUSD); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// TotalSpend returns the sum of spend across all records
func (r *SpendRepository) TotalSpend() (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRow(`SELECT SUM(spend_usd) FROM spend_records`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

// SpendBy returns spend summed per distinct value of the given column,
// highest first, positionally paired labels and values
func (r *SpendRepository) SpendBy(column string) ([]string, []float64, error) {
	col, ok := sqlColumns[column]
	if !ok {
		return nil, nil, fmt.Errorf("cannot group by column %q: %w", column, domain.ErrInvalidRequest)
	}

	rows, err := r.db.Query(fmt.Sprintf(`
		SELECT %s, SUM(spend_usd) FROM spend_records
		GROUP BY %s ORDER BY SUM(spend_usd) DESC
	`, col, col))
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var labels []string
	var values []float64
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return nil, nil, err
		}
		labels = append(labels, label)
		values = append(values, value)
	}

	return labels, values, rows.Err()
}

// DistinctValues returns the distinct values of the given column in
// alphabetical order
func (r *SpendRepository) DistinctValues(column string) ([]string, error) {
	col, ok := sqlColumns[column]
	if !ok {
		return nil, fmt.Errorf("cannot list column %q: %w", column, domain.ErrInvalidRequest)
	}

	rows, err := r.db.Query(fmt.Sprintf(`SELECT DISTINCT %s FROM spend_records ORDER BY %s ASC`, col, col))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// SpendWhere returns the summed spend for records whose column equals
// value; found is false when no record matches
func (r *SpendRepository) SpendWhere(column, value string) (total float64, found bool, err error) {
	col, ok := sqlColumns[column]
	if !ok {
		return 0, false, fmt.Errorf("cannot filter by column %q: %w", column, domain.ErrInvalidRequest)
	}

	var sum sql.NullFloat64
	err = r.db.QueryRow(fmt.Sprintf(`
		SELECT SUM(spend_usd) FROM spend_records WHERE %s = ? COLLATE NOCASE
	`, col), value).Scan(&sum)
	if err != nil {
		return 0, false, err
	}

	return sum.Float64, sum.Valid, nil
}
