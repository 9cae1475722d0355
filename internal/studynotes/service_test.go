package studynotes

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
)

func validNoteJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "European Rivers to Know",
		"overview": "Quiz questions about European geography lean heavily on major rivers, the capitals they pass through, and the seas they empty into.",
		"key_facts": [
			"The Danube flows through four capitals: Vienna, Bratislava, Budapest, and Belgrade.",
			"The Volga is the longest river in Europe and empties into the Caspian Sea.",
			"The Rhine rises in the Swiss Alps and reaches the North Sea at Rotterdam.",
			"The Seine flows through Paris to the English Channel."
		],
		"practice_question": {
			"prompt": "Which river empties into the Caspian Sea?",
			"answer": "Volga",
			"explanation": "The Volga, Europe's longest river, drains into the Caspian."
		}
	}`)
}

func testCategory() catalog.Category {
	return catalog.Category{
		ID:          "geography",
		Name:        "Geography",
		Description: "Countries, capitals, rivers, mountains, and landmarks",
	}
}

func TestService_GeneratesNote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validNoteJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	input := NoteInput{
		Category:     testCategory(),
		Accuracy:     0.4,
		MasteryLevel: "novice",
		RecentMisses: []string{"Which river flows through Budapest?"},
	}

	svc.RequestNote(t.Context(), input)

	// Poll for result.
	var note *Note
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		note, ok = svc.ConsumeNote()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || note == nil {
		t.Fatal("expected note to be generated")
	}

	if note.CategoryID != "geography" {
		t.Errorf("CategoryID = %q, want geography", note.CategoryID)
	}
	if note.Title != "European Rivers to Know" {
		t.Errorf("Title = %q", note.Title)
	}
	if len(note.KeyFacts) != 4 {
		t.Errorf("KeyFacts len = %d, want 4", len(note.KeyFacts))
	}
	if note.PracticeQuestion.Answer != "Volga" {
		t.Errorf("practice answer = %q, want Volga", note.PracticeQuestion.Answer)
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if note, ok := svc.ConsumeNote(); ok || note != nil {
		t.Error("ConsumeNote before any request should return (nil, false)")
	}
}

func TestService_GenerationFailure(t *testing.T) {
	// Empty mock queue: generation errors, consume yields no note.
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	svc.RequestNote(t.Context(), NoteInput{Category: testCategory()})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if note, ok := svc.ConsumeNote(); ok || note != nil {
		t.Error("failed generation must not produce a note")
	}
}

func TestBuildNoteUserMessage(t *testing.T) {
	msg := buildNoteUserMessage(NoteInput{
		Category:     testCategory(),
		Accuracy:     0.55,
		MasteryLevel: "intermediate",
		RecentMisses: []string{"Which sea borders Ukraine to the south?"},
	})

	for _, want := range []string{"Geography", "55%", "intermediate", "Which sea borders Ukraine"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_Synchronous(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewService(mock, DefaultConfig())

	note, err := svc.Generate(t.Context(), NoteInput{Category: testCategory()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if note.Overview == "" {
		t.Error("expected non-empty overview")
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "study-note" {
		t.Error("request should carry the study-note schema")
	}
}
