package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/repository"
)

// AnalysisService interprets natural-language questions about the spend
// dataset and produces an answer plus an optional chart payload. The
// interpreter is deterministic: a small set of intents backed by SQL
// aggregations.
type AnalysisService struct {
	repo   *repository.SpendRepository
	logger *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo *repository.SpendRepository, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{repo: repo, logger: logger}
}

// columnKeywords maps question fragments onto dataset columns. Fragments
// cover both singular and plural forms.
var columnKeywords = []struct {
	fragment string
	column   string
}{
	{"commodit", domain.ColCommodity},
	{"supplier", domain.ColSupplier},
	{"region", domain.ColRegion},
	{"month", domain.ColMonth},
}

// Answer interprets the question against the dataset. History is part of
// the wire contract but the deterministic intents do not consult it.
func (s *AnalysisService) Answer(ctx context.Context, question string, history []domain.ChatMessage) (*domain.ChatResponse, error) {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "plot", "chart", "graph", "draw"):
		return s.answerChart(q)
	case strings.Contains(q, "total") && strings.Contains(q, "spend"):
		return s.answerTotal()
	case containsAny(q, "list", "what are", "which"):
		if col, ok := detectColumn(q); ok {
			return s.answerList(col)
		}
	case strings.Contains(q, "spend"):
		if col, ok := detectColumn(q); ok && strings.Contains(q, " by ") {
			return s.answerGroupedText(col)
		}
		if resp, ok, err := s.answerFiltered(q); err != nil {
			return nil, err
		} else if ok {
			return resp, nil
		}
	}

	s.logger.Debug("unrecognized question", zap.String("question", question))
	return &domain.ChatResponse{
		Answer: "I can answer questions about the spend data. Try \"What is the total spend?\", " +
			"\"List the commodities\", or \"Plot spend by commodity\".",
	}, nil
}

func (s *AnalysisService) answerChart(q string) (*domain.ChatResponse, error) {
	column := domain.ColCommodity
	if col, ok := detectColumn(q); ok {
		column = col
	}

	labels, values, err := s.repo.SpendBy(column)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return &domain.ChatResponse{Answer: "No data is available to plot."}, nil
	}

	chartType := domain.ChartBar
	if strings.Contains(q, "pie") {
		chartType = domain.ChartPie
	}

	return &domain.ChatResponse{
		Answer: fmt.Sprintf("Here is the spend by %s.", strings.ToLower(column)),
		Chart: &domain.ChartPayload{
			Type:   chartType,
			Labels: labels,
			Data:   values,
		},
	}, nil
}

func (s *AnalysisService) answerTotal() (*domain.ChatResponse, error) {
	total, err := s.repo.TotalSpend()
	if err != nil {
		return nil, err
	}
	return &domain.ChatResponse{
		Answer: fmt.Sprintf("The total spend is %s.", formatUSD(total)),
	}, nil
}

func (s *AnalysisService) answerList(column string) (*domain.ChatResponse, error) {
	values, err := s.repo.DistinctValues(column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return &domain.ChatResponse{Answer: "The dataset is empty."}, nil
	}
	return &domain.ChatResponse{
		Answer: fmt.Sprintf("The %s values are: %s.", strings.ToLower(column), strings.Join(values, ", ")),
	}, nil
}

func (s *AnalysisService) answerGroupedText(column string) (*domain.ChatResponse, error) {
	labels, values, err := s.repo.SpendBy(column)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return &domain.ChatResponse{Answer: "The dataset is empty."}, nil
	}

	parts := make([]string, len(labels))
	for i := range labels {
		parts[i] = fmt.Sprintf("%s %s", labels[i], formatUSD(values[i]))
	}
	return &domain.ChatResponse{
		Answer: fmt.Sprintf("Spend by %s: %s.", strings.ToLower(column), strings.Join(parts, ", ")),
	}, nil
}

// answerFiltered matches the question against known category values
// (commodity, supplier, region) and sums the matching records.
func (s *AnalysisService) answerFiltered(q string) (*domain.ChatResponse, bool, error) {
	for _, column := range []string{domain.ColCommodity, domain.ColSupplier, domain.ColRegion} {
		values, err := s.repo.DistinctValues(column)
		if err != nil {
			return nil, false, err
		}
		for _, value := range values {
			if !strings.Contains(q, strings.ToLower(value)) {
				continue
			}
			total, found, err := s.repo.SpendWhere(column, value)
			if err != nil {
				return nil, false, err
			}
			if !found {
				return &domain.ChatResponse{
					Answer: fmt.Sprintf("No data was found for '%s'.", value),
				}, true, nil
			}
			return &domain.ChatResponse{
				Answer: fmt.Sprintf("The spend for %s is %s.", value, formatUSD(total)),
			}, true, nil
		}
	}
	return nil, false, nil
}

func detectColumn(q string) (string, bool) {
	for _, kw := range columnKeywords {
		if strings.Contains(q, kw.fragment) {
			return kw.column, true
		}
	}
	return "", false
}

func containsAny(q string, fragments ...string) bool {
	for _, f := range fragments {
		if strings.Contains(q, f) {
			return true
		}
	}
	return false
}

func formatUSD(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}
