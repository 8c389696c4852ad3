package loancalc

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		in   string
		want Model
	}{
		{"annuity", Annuity},
		{"diff", Differentiated},
		{"differentiated", Differentiated},
	}
	for _, tc := range tests {
		got, err := ParseModel(tc.in)
		if err != nil {
			t.Errorf("ParseModel(%q) returned unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseModel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseModel("balloon"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseModel(\"balloon\") = %v, want ErrInvalidInput", err)
	}
}

func TestModelJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Differentiated)
	if err != nil {
		t.Fatalf("Marshal(Differentiated) returned unexpected error: %v", err)
	}
	if string(b) != `"diff"` {
		t.Errorf("Marshal(Differentiated) = %s, want %q", b, `"diff"`)
	}

	var m Model
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal(%s) returned unexpected error: %v", b, err)
	}
	if m != Differentiated {
		t.Errorf("Unmarshal(%s) = %v, want Differentiated", b, m)
	}
}
