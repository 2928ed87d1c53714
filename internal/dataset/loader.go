// Package dataset loads the spend dataset from CSV into the repository.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/repository"
)

// LoadCSV reads spend records from a CSV file. The header must match the
// declared schema exactly, column for column; rows are rejected rather
// than re-shaped.
func LoadCSV(path string) ([]domain.SpendRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset is empty: %w", domain.ErrSchemaMismatch)
	}

	schema := domain.SpendSchema()
	header := rows[0]
	if len(header) != len(schema) {
		return nil, fmt.Errorf("header has %d columns, want %d: %w", len(header), len(schema), domain.ErrSchemaMismatch)
	}
	for i, col := range schema {
		if header[i] != col {
			return nil, fmt.Errorf("header column %d is %q, want %q: %w", i, header[i], col, domain.ErrSchemaMismatch)
		}
	}

	records := make([]domain.SpendRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		spend, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad spend value %q: %w", i+1, row[4], err)
		}
		records = append(records, domain.SpendRecord{
			Supplier:  row[0],
			Commodity: row[1],
			Region:    row[2],
			Month:     row[3],
			SpendUSD:  spend,
		})
	}

	return records, nil
}

// Seed populates the repository from the configured CSV, or from the
// built-in sample when no path is configured. An already populated
// repository is left untouched.
func Seed(repo *repository.SpendRepository, csvPath string, logger *zap.Logger) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}
	if count > 0 {
		logger.Info("dataset already seeded", zap.Int("records", count))
		return nil
	}

	var records []domain.SpendRecord
	if csvPath != "" {
		records, err = LoadCSV(csvPath)
		if err != nil {
			return err
		}
		logger.Info("dataset loaded from CSV", zap.String("path", csvPath), zap.Int("records", len(records)))
	} else {
		records = Sample()
		logger.Info("dataset seeded from built-in sample", zap.Int("records", len(records)))
	}

	if err := repo.InsertBatch(records); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	return nil
}
