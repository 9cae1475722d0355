package catalog

import "testing"

func TestAllCategoriesDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCategories() {
		if c.ID == "" || c.Name == "" {
			t.Errorf("category %+v has empty ID or Name", c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate category ID %q", c.ID)
		}
		seen[c.ID] = true
	}
	if Count() != len(seen) {
		t.Errorf("Count() = %d, want %d", Count(), len(seen))
	}
}

func TestGetCategory(t *testing.T) {
	c, err := GetCategory("history")
	if err != nil {
		t.Fatalf("GetCategory(history): %v", err)
	}
	if c.Name != "History" {
		t.Errorf("Name = %q, want History", c.Name)
	}
	if _, err := GetCategory("bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCategoryNameFallback(t *testing.T) {
	if got := CategoryName("no-such"); got != "no-such" {
		t.Errorf("CategoryName(no-such) = %q, want the ID back", got)
	}
	if got := CategoryName("science"); got != "Science & Nature" {
		t.Errorf("CategoryName(science) = %q", got)
	}
}
