package id_test

import (
	"encoding/json"
	"testing"

	"hindidrill/internal/platform/id"
)

func TestOpaqueAcceptsNumbersAndStrings(t *testing.T) {
	t.Parallel()
	var payload []struct {
		ID id.Opaque `json:"id"`
	}
	if err := json.Unmarshal([]byte(`[{"id":2},{"id":"lesson-7"},{"id":null}]`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload[0].ID != "2" || payload[1].ID != "lesson-7" || payload[2].ID != "" {
		t.Fatalf("unexpected ids: %+v", payload)
	}
	if err := json.Unmarshal([]byte(`[{"id":true}]`), &payload); err == nil {
		t.Fatalf("boolean id must fail")
	}
}

func TestUUIDGeneratorIsUnique(t *testing.T) {
	t.Parallel()
	gen := id.UUID{}
	if gen.New() == gen.New() {
		t.Fatalf("expected distinct ids")
	}
}
