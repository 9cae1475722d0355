package questiongen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		ID:          "q-1",
		CategoryID:  "geography",
		Prompt:      "Which river flows through Budapest?",
		Answer:      "Danube",
		Choices:     []string{"Danube", "Rhine", "Elbe", "Vistula"},
		Difficulty:  DifficultyMedium,
		Explanation: "The Danube passes through Budapest.",
		Source:      "llm",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	input := GenerateInput{}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantMsg string // empty means pass
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty prompt", func(q *Question) { q.Prompt = "" }, "prompt is empty"},
		{"long prompt", func(q *Question) { q.Prompt = strings.Repeat("x", 401) }, "400 characters"},
		{"empty answer", func(q *Question) { q.Answer = "" }, "answer is empty"},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, "explanation is empty"},
		{"long explanation", func(q *Question) { q.Explanation = strings.Repeat("x", 601) }, "600 characters"},
		{"bad difficulty", func(q *Question) { q.Difficulty = "brutal" }, "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			verr := v.Validate(q, input)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Errorf("Validate = %v, want pass", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("Validate = nil, want failure")
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", verr.Message, tt.wantMsg)
			}
			if !verr.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestChoicesValidator(t *testing.T) {
	v := &ChoicesValidator{}
	input := GenerateInput{}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantMsg string
	}{
		{"valid", func(q *Question) {}, ""},
		{"too few", func(q *Question) { q.Choices = q.Choices[:3] }, "exactly 4"},
		{"too many", func(q *Question) { q.Choices = append(q.Choices, "Po") }, "exactly 4"},
		{"empty choice", func(q *Question) { q.Choices[2] = "  " }, "empty"},
		{"duplicate", func(q *Question) { q.Choices[3] = "rhine" }, "distinct"},
		{"answer missing", func(q *Question) { q.Answer = "Seine" }, "does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			verr := v.Validate(q, input)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Errorf("Validate = %v, want pass", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("Validate = nil, want failure")
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want substring %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	q := validQuestion()
	tests := []struct {
		selected string
		want     bool
	}{
		{"Danube", true},
		{" danube ", true},
		{"DANUBE", true},
		{"Rhine", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.selected, q.Answer); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.selected, got, tt.want)
		}
	}
}
