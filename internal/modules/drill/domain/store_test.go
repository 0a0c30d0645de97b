package domain_test

import (
	"testing"

	"hindidrill/internal/modules/drill/domain"
)

func animals() []domain.Word {
	return []domain.Word{
		{HindiWord: "कुत्ता", EnglishMeaning: "dog"},
		{HindiWord: "बिल्ली", EnglishMeaning: "cat"},
	}
}

func TestSetWordsResetsCursor(t *testing.T) {
	t.Parallel()
	var store domain.WordStore
	store.SetWords(animals())
	store.Advance()
	store.SetWords(animals())
	if store.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", store.Cursor())
	}
	word, ok := store.Current()
	if !ok || word.HindiWord != "कुत्ता" {
		t.Fatalf("expected first word, got %+v ok=%v", word, ok)
	}
}

func TestAdvanceAndRetreatStopAtBounds(t *testing.T) {
	t.Parallel()
	var store domain.WordStore
	store.SetWords(animals())
	if store.Retreat() {
		t.Fatalf("retreat at index 0 must not move")
	}
	if !store.Advance() {
		t.Fatalf("expected advance to move")
	}
	word, _ := store.Current()
	if word.HindiWord != "बिल्ली" {
		t.Fatalf("expected बिल्ली, got %q", word.HindiWord)
	}
	if store.Advance() {
		t.Fatalf("advance at last index must not move")
	}
	if store.Cursor() != 1 || !store.AtEnd() {
		t.Fatalf("expected cursor to stay at last index, got %d", store.Cursor())
	}
	if !store.Retreat() || store.Cursor() != 0 {
		t.Fatalf("expected retreat to index 0")
	}
}

func TestEmptyStore(t *testing.T) {
	t.Parallel()
	var store domain.WordStore
	store.SetWords(nil)
	if _, ok := store.Current(); ok {
		t.Fatalf("empty store has no current word")
	}
	if store.Advance() || store.Retreat() {
		t.Fatalf("empty store must not move")
	}
	if store.Cursor() != 0 || store.Len() != 0 {
		t.Fatalf("unexpected cursor %d len %d", store.Cursor(), store.Len())
	}
}

func TestSetWordsCopiesInput(t *testing.T) {
	t.Parallel()
	words := animals()
	var store domain.WordStore
	store.SetWords(words)
	words[0].HindiWord = "changed"
	if word, _ := store.Current(); word.HindiWord != "कुत्ता" {
		t.Fatalf("store must not alias caller slice, got %q", word.HindiWord)
	}
}

func TestSpokenForm(t *testing.T) {
	t.Parallel()
	if (domain.Word{HindiWord: "  "}).HasSpokenForm() {
		t.Fatalf("blank word has no spoken form")
	}
	w := domain.Word{HindiWord: "पानी"}
	if !w.HasSpokenForm() || w.SpokenForm() != "पानी" {
		t.Fatalf("unexpected spoken form %q", w.SpokenForm())
	}
}
