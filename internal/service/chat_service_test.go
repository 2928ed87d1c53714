package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/domain"
)

type stubAnalyzer struct {
	resp         *domain.ChatResponse
	err          error
	lastQuestion string
	lastHistory  []domain.ChatMessage
}

func (s *stubAnalyzer) Answer(ctx context.Context, question string, history []domain.ChatMessage) (*domain.ChatResponse, error) {
	s.lastQuestion = question
	s.lastHistory = history
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestChatEmptyMessages(t *testing.T) {
	svc := NewChatService(&stubAnalyzer{}, nil, nil)

	resp, err := svc.Chat(context.Background(), &domain.ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "No query provided.", resp.Answer)
	assert.Nil(t, resp.Chart)
}

func TestChatSplitsQuestionAndHistory(t *testing.T) {
	analyzer := &stubAnalyzer{resp: &domain.ChatResponse{Answer: "ok"}}
	svc := NewChatService(analyzer, nil, nil)

	_, err := svc.Chat(context.Background(), &domain.ChatRequest{Messages: []domain.ChatMessage{
		{Sender: "user", Text: "first"},
		{Sender: "bot", Text: "answer"},
		{Sender: "user", Text: "second"},
	}})
	require.NoError(t, err)

	assert.Equal(t, "second", analyzer.lastQuestion)
	assert.Equal(t, []domain.ChatMessage{
		{Sender: "user", Text: "first"},
		{Sender: "bot", Text: "answer"},
	}, analyzer.lastHistory)
}

func TestChatAnalyzerFailureBecomesAnswer(t *testing.T) {
	svc := NewChatService(&stubAnalyzer{err: errors.New("boom")}, nil, nil)

	resp, err := svc.Chat(context.Background(), &domain.ChatRequest{Messages: []domain.ChatMessage{
		{Sender: "user", Text: "anything"},
	}})
	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "error occurred")
	assert.Nil(t, resp.Chart)
}

func TestChatDropsMalformedChart(t *testing.T) {
	analyzer := &stubAnalyzer{resp: &domain.ChatResponse{
		Answer: "here",
		Chart:  &domain.ChartPayload{Type: "bar", Labels: []string{"a"}},
	}}
	svc := NewChatService(analyzer, nil, nil)

	resp, err := svc.Chat(context.Background(), &domain.ChatRequest{Messages: []domain.ChatMessage{
		{Sender: "user", Text: "plot"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "here", resp.Answer)
	assert.Nil(t, resp.Chart)
}

func TestChatLogsQueries(t *testing.T) {
	_, queryLog := newTestRepos(t)
	analyzer := &stubAnalyzer{resp: &domain.ChatResponse{
		Answer: "here",
		Chart:  &domain.ChartPayload{Type: "bar", Labels: []string{"a"}, Data: []float64{1}},
	}}
	svc := NewChatService(analyzer, queryLog, nil)

	_, err := svc.Chat(context.Background(), &domain.ChatRequest{Messages: []domain.ChatMessage{
		{Sender: "user", Text: "plot spend"},
	}})
	require.NoError(t, err)

	count, err := queryLog.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := queryLog.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "plot spend", entries[0].Question)
	assert.True(t, entries[0].HadChart)
}
