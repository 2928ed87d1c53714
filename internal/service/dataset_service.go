package service

import (
	"context"

	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/repository"
)

// DatasetService exposes the raw dataset and system statistics
type DatasetService struct {
	repo     *repository.SpendRepository
	queryLog *repository.QueryLogRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.SpendRepository, queryLog *repository.QueryLogRepository) *DatasetService {
	return &DatasetService{repo: repo, queryLog: queryLog}
}

// Rows returns every dataset row keyed by column name, in insertion order
func (s *DatasetService) Rows(ctx context.Context) ([]domain.Row, error) {
	records, err := s.repo.All()
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Row, len(records))
	for i, rec := range records {
		rows[i] = domain.Row{
			domain.ColSupplier:  rec.Supplier,
			domain.ColCommodity: rec.Commodity,
			domain.ColRegion:    rec.Region,
			domain.ColMonth:     rec.Month,
			domain.ColSpendUSD:  rec.SpendUSD,
		}
	}
	return rows, nil
}

// Stats returns record and query totals
func (s *DatasetService) Stats(ctx context.Context) (*domain.Stats, error) {
	records, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	queries, err := s.queryLog.Count()
	if err != nil {
		return nil, err
	}
	return &domain.Stats{TotalRecords: records, TotalQueries: queries}, nil
}
