package readiness

import "testing"

func statsFor(id string, answered, correct int) CategoryStats {
	return CategoryStats{CategoryID: id, RecentAnswered: answered, RecentCorrect: correct}
}

func TestEvaluateCoverage_Policy(t *testing.T) {
	tests := []struct {
		name        string
		stats       CategoryStats
		wantCovered bool
		wantWeak    bool
	}{
		{"exactly at bar", statsFor("a", 10, 7), true, false},
		{"high accuracy min volume", statsFor("a", 3, 3), true, false},
		{"accuracy just under", statsFor("a", 100, 69), false, false},
		{"volume just under", statsFor("a", 2, 2), false, true},
		{"low accuracy", statsFor("a", 10, 5), false, true},
		{"mid accuracy enough volume", statsFor("a", 10, 6), false, false},
		{"unanswered", statsFor("a", 0, 0), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := EvaluateCoverage([]CategoryStats{tt.stats}, []string{"a"}, nil)
			if got := cov.Categories[0].Covered; got != tt.wantCovered {
				t.Errorf("Covered = %v, want %v", got, tt.wantCovered)
			}
			if got := len(cov.Weak) == 1; got != tt.wantWeak {
				t.Errorf("weak = %v, want %v", got, tt.wantWeak)
			}
		})
	}
}

func TestEvaluateCoverage_BreadthFactor(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	tests := []struct {
		covered int
		want    float64
	}{
		{0, 0.0},
		{3, 0.3},
		{5, 0.5},
		{10, 1.0},
		{12, 1.0}, // capped even past the required count
	}
	for _, tt := range tests {
		var stats []CategoryStats
		for i := 0; i < tt.covered; i++ {
			stats = append(stats, statsFor(ids[i], 10, 9))
		}
		cov := EvaluateCoverage(stats, ids, nil)
		if cov.Breadth.CoveredCategories != tt.covered {
			t.Errorf("covered %d: CoveredCategories = %d", tt.covered, cov.Breadth.CoveredCategories)
		}
		if cov.Breadth.BreadthFactor != tt.want {
			t.Errorf("covered %d: BreadthFactor = %f, want %f", tt.covered, cov.Breadth.BreadthFactor, tt.want)
		}
	}
}

func TestEvaluateCoverage_MissingCategoriesAreWeak(t *testing.T) {
	cov := EvaluateCoverage(nil, []string{"a", "b"}, nil)
	if len(cov.Categories) != 2 {
		t.Fatalf("Categories len = %d, want 2", len(cov.Categories))
	}
	if len(cov.Weak) != 2 {
		t.Errorf("Weak len = %d, want 2 (unanswered categories)", len(cov.Weak))
	}
	if cov.Breadth.BreadthFactor != 0 {
		t.Errorf("BreadthFactor = %f, want 0 for new user", cov.Breadth.BreadthFactor)
	}
}

func TestEvaluateCoverage_WeakSortedByAccuracy(t *testing.T) {
	stats := []CategoryStats{
		statsFor("mid", 10, 5),  // 0.50
		statsFor("low", 10, 2),  // 0.20
		statsFor("thin", 2, 2),  // 1.00 but under volume
		statsFor("fine", 10, 8), // not weak
	}
	cov := EvaluateCoverage(stats, []string{"mid", "low", "thin", "fine"}, nil)
	want := []string{"low", "mid", "thin"}
	if len(cov.Weak) != len(want) {
		t.Fatalf("Weak len = %d, want %d", len(cov.Weak), len(want))
	}
	for i, id := range want {
		if cov.Weak[i].CategoryID != id {
			t.Errorf("Weak[%d] = %s, want %s", i, cov.Weak[i].CategoryID, id)
		}
	}
}

func TestEvaluateCoverage_StockedPolicy(t *testing.T) {
	stats := []CategoryStats{
		{CategoryID: "a", TotalQuestions: 5},
		{CategoryID: "b", TotalQuestions: 4},
	}
	cov := EvaluateCoverage(stats, []string{"a", "b"}, nil)
	if !cov.Categories[0].Stocked {
		t.Error("5 questions should count as stocked")
	}
	if cov.Categories[1].Stocked {
		t.Error("4 questions should not count as stocked")
	}
	// Stocked is independent of the accuracy-based covered flag.
	if cov.Categories[0].Covered {
		t.Error("stocked but unanswered category must not count as covered")
	}
}

func TestEvaluateCoverage_NameLookup(t *testing.T) {
	names := map[string]string{"a": "Alpha"}
	cov := EvaluateCoverage(nil, []string{"a"}, func(id string) string { return names[id] })
	if cov.Categories[0].Name != "Alpha" {
		t.Errorf("Name = %q, want Alpha", cov.Categories[0].Name)
	}
}
