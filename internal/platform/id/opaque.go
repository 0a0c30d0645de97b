package id

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Opaque is a backend identifier that may arrive as a JSON number or a JSON
// string. It is kept as text and never interpreted.
type Opaque string

func (o *Opaque) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*o = Opaque(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*o = Opaque(n.String())
	return nil
}

func (o Opaque) String() string { return string(o) }
