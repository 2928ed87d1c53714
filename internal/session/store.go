// Package session owns the chat transcript state machine: an append-only
// ordered sequence of turns plus the in-flight flag and the uncommitted
// draft, mutated only through Submit.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/chart"
	"github.com/spendlens/spendlens/internal/domain"
)

// WelcomeText seeds every new transcript with one bot turn.
const WelcomeText = "Hello! Ask me anything about the spend data, or ask me to plot it."

// ErrorText is the fixed bot turn appended when the analysis service fails.
const ErrorText = "Sorry, I ran into a problem answering that. Please try again."

// QueryClient is the external collaborator that answers a projected
// transcript with an answer and an optional chart payload.
type QueryClient interface {
	Query(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error)
}

// Store mediates every transition of one chat session
type Store struct {
	mu         sync.RWMutex
	client     QueryClient
	logger     *zap.Logger
	transcript []domain.Turn
	pending    bool
	draft      string
}

// NewStore creates a session store seeded with the welcome turn
func NewStore(client QueryClient, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		client:     client,
		logger:     logger,
		transcript: []domain.Turn{newTurn(domain.SenderBot, WelcomeText, nil)},
	}
}

// Submit appends the user's text, queries the analysis service with the
// full projected transcript, and appends the resulting bot turn. A
// whitespace-only input is a no-op with no outbound call. Submits are
// serialized: a call while another is in flight returns domain.ErrBusy
// instead of racing on the transcript. Service failures are logged,
// converted into a fixed error turn, and never propagated.
func (s *Store) Submit(ctx context.Context, rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return nil
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	s.transcript = append(s.transcript, newTurn(domain.SenderUser, rawText, nil))
	s.pending = true
	s.draft = ""
	messages := s.project()
	s.mu.Unlock()

	resp, err := s.client.Query(ctx, messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.pending = false }()

	if err != nil {
		s.logger.Warn("chat query failed", zap.Error(err))
		s.transcript = append(s.transcript, newTurn(domain.SenderBot, ErrorText, nil))
		return nil
	}

	s.transcript = append(s.transcript, newTurn(domain.SenderBot, resp.Answer, chart.Normalize(resp.Chart)))
	return nil
}

// Transcript returns a copy of the ordered turn history
func (s *Store) Transcript() []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len returns the number of turns in the transcript
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcript)
}

// Pending reports whether a submit is in flight
func (s *Store) Pending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Draft returns the uncommitted input text
func (s *Store) Draft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// SetDraft stores the uncommitted input text
func (s *Store) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

// project drops chart payloads and IDs, leaving the sender/text pairs
// the wire contract expects. The seeded welcome turn stays local: only
// turns produced by submits are sent. Caller holds the lock.
func (s *Store) project() []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(s.transcript)-1)
	for _, t := range s.transcript[1:] {
		messages = append(messages, domain.ChatMessage{Sender: t.Sender, Text: t.Text})
	}
	return messages
}

func newTurn(sender, text string, payload *domain.ChartPayload) domain.Turn {
	return domain.Turn{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		Chart:     payload,
		CreatedAt: time.Now(),
	}
}
