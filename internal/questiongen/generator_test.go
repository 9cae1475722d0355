package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
)

func testCategory() catalog.Category {
	return catalog.Category{
		ID:          "geography",
		Name:        "Geography",
		Description: "Countries, capitals, rivers, mountains, and landmarks",
	}
}

func validOutput() questionOutput {
	return questionOutput{
		Prompt:      "Which river flows through Budapest?",
		Answer:      "Danube",
		Choices:     []string{"Danube", "Rhine", "Elbe", "Vistula"},
		Difficulty:  "medium",
		Explanation: "The Danube passes through Budapest, splitting Buda from Pest.",
	}
}

func mockFor(t *testing.T, out questionOutput) *llm.MockProvider {
	t.Helper()
	content, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal canned response: %v", err)
	}
	return llm.NewMockProvider(llm.MockResponse{Content: content})
}

func TestGenerate_Valid(t *testing.T) {
	gen := New(mockFor(t, validOutput()), DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Category:   testCategory(),
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.ID == "" {
		t.Error("generated question must get an ID")
	}
	if q.CategoryID != "geography" {
		t.Errorf("CategoryID = %q, want geography", q.CategoryID)
	}
	if q.Answer != "Danube" {
		t.Errorf("Answer = %q, want Danube", q.Answer)
	}
	if len(q.Choices) != 4 {
		t.Errorf("Choices len = %d, want 4", len(q.Choices))
	}
	if q.Source != "llm" {
		t.Errorf("Source = %q, want llm", q.Source)
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := mockFor(t, validOutput())
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category:       testCategory(),
		Difficulty:     DifficultyHard,
		PriorQuestions: []string{"What is the capital of Peru?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "trivia-question" {
		t.Error("request should carry the trivia-question schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Geography", "hard", "What is the capital of Peru?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_ValidatorRejects(t *testing.T) {
	out := validOutput()
	out.Choices = []string{"Danube", "Rhine"} // too few
	gen := New(mockFor(t, out), DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: testCategory(), Difficulty: DifficultyMedium})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "choices") {
		t.Errorf("err = %v, want choices validator failure", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: testCategory(), Difficulty: DifficultyEasy})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBuildDedup(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("buildDedup(nil) = %q, want None", got)
	}

	got := buildDedup([]string{"a", "b", "c"}, 2)
	if strings.Contains(got, "a") {
		t.Errorf("oldest question should be dropped past the limit: %q", got)
	}
	if !strings.Contains(got, "b") || !strings.Contains(got, "c") {
		t.Errorf("recent questions missing: %q", got)
	}
}
