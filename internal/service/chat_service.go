package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/chart"
	"github.com/spendlens/spendlens/internal/domain"
	"github.com/spendlens/spendlens/internal/repository"
)

// Analyzer answers one question given the prior conversation history
type Analyzer interface {
	Answer(ctx context.Context, question string, history []domain.ChatMessage) (*domain.ChatResponse, error)
}

// ChatService handles chat requests: it extracts the current question
// from the transcript, delegates to the analyzer, and validates the
// returned chart before it reaches any client.
type ChatService struct {
	analyzer Analyzer
	queryLog *repository.QueryLogRepository
	logger   *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(analyzer Analyzer, queryLog *repository.QueryLogRepository, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		analyzer: analyzer,
		queryLog: queryLog,
		logger:   logger,
	}
}

// Chat answers the latest message of a transcript. Analyzer failures are
// converted into an answer rather than an error so the session never
// breaks; a structurally malformed chart is dropped.
func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return &domain.ChatResponse{Answer: "No query provided."}, nil
	}

	question := req.Messages[len(req.Messages)-1].Text
	history := req.Messages[:len(req.Messages)-1]

	resp, err := s.analyzer.Answer(ctx, question, history)
	if err != nil {
		s.logger.Warn("analysis failed", zap.String("question", question), zap.Error(err))
		resp = &domain.ChatResponse{Answer: "An error occurred while analyzing the data. Please try again."}
	}

	resp.Chart = chart.Normalize(resp.Chart)

	if s.queryLog != nil {
		entry := &domain.QueryLogEntry{
			Question: question,
			Answer:   resp.Answer,
			HadChart: resp.Chart != nil,
		}
		if err := s.queryLog.Create(entry); err != nil {
			s.logger.Warn("failed to log query", zap.Error(err))
		}
	}

	return resp, nil
}
