package studynotes

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
)

// Service generates study notes asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Note
	err     error
	ready   bool
}

// NewService creates a study note generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestNote starts async note generation. Only one note is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestNote(ctx context.Context, input NoteInput) {
	go func() {
		note, err := s.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = note
		s.err = err
		s.ready = true
	}()
}

// ConsumeNote returns the pending note if one is ready.
// Returns (nil, false) if no note is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeNote() (*Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	note := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return note, note != nil
}

type noteOutput struct {
	Title            string                 `json:"title"`
	Overview         string                 `json:"overview"`
	KeyFacts         []string               `json:"key_facts"`
	PracticeQuestion practiceQuestionOutput `json:"practice_question"`
}

type practiceQuestionOutput struct {
	Prompt      string `json:"prompt"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// Generate produces a study note synchronously. The async Request/Consume
// pair wraps this for the TUI; CLI callers use it directly.
func (s *Service) Generate(ctx context.Context, input NoteInput) (*Note, error) {
	ctx = llm.WithPurpose(ctx, "study-note")

	userMsg := buildNoteUserMessage(input)

	req := llm.Request{
		System: noteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse study note response: %w", err)
	}

	return &Note{
		CategoryID: input.Category.ID,
		Title:      out.Title,
		Overview:   out.Overview,
		KeyFacts:   out.KeyFacts,
		PracticeQuestion: PracticeQuestion{
			Prompt:      out.PracticeQuestion.Prompt,
			Answer:      out.PracticeQuestion.Answer,
			Explanation: out.PracticeQuestion.Explanation,
		},
	}, nil
}
