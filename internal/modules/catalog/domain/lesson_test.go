package domain_test

import (
	"testing"

	"hindidrill/internal/modules/catalog/domain"
)

func TestDedupeKeepsFirstByName(t *testing.T) {
	t.Parallel()
	in := []domain.Lesson{
		{ID: "1", Name: "Animals"},
		{ID: "2", Name: "Fruits"},
		{ID: "3", Name: "Animals"},
	}
	out := domain.Dedupe(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(out))
	}
	if out[0].ID != "1" || out[1].ID != "2" {
		t.Fatalf("unexpected order or ids: %+v", out)
	}
}

func TestDedupeEmpty(t *testing.T) {
	t.Parallel()
	if out := domain.Dedupe(nil); len(out) != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}
}

func TestLessonValidateAndFind(t *testing.T) {
	t.Parallel()
	if err := (domain.Lesson{ID: "1", Name: "Animals"}).Validate(); err != nil {
		t.Fatalf("lesson should be valid: %v", err)
	}
	if err := (domain.Lesson{Name: "Animals"}).Validate(); err == nil {
		t.Fatalf("missing id should fail")
	}
	if err := (domain.Lesson{ID: "1", Name: " "}).Validate(); err == nil {
		t.Fatalf("blank name should fail")
	}
	lessons := []domain.Lesson{{ID: "1", Name: "Animals"}, {ID: "2", Name: "Fruits"}}
	if got, ok := domain.Find(lessons, "2"); !ok || got.Name != "Fruits" {
		t.Fatalf("expected Fruits, got %+v ok=%v", got, ok)
	}
	if _, ok := domain.Find(lessons, "9"); ok {
		t.Fatalf("unexpected match for unknown id")
	}
}
