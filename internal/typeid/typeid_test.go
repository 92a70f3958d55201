package typeid

import (
	"strings"
	"testing"
)

func TestNewCarriesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
	}{
		{"user", NewUserID(), PrefixUser},
		{"board", NewBoardID(), PrefixBoard},
		{"snapshot", NewSnapshotID(), PrefixSnapshot},
		{"shape", NewShapeID(), PrefixShape},
		{"client", NewClientID(), PrefixClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.id, tt.prefix+"_") {
				t.Errorf("id %q does not carry prefix %q", tt.id, tt.prefix)
			}
			if err := Validate(tt.id, tt.prefix); err != nil {
				t.Errorf("Validate(%q, %q) = %v", tt.id, tt.prefix, err)
			}
		})
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewShapeID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestValidateRejectsWrongPrefix(t *testing.T) {
	if err := Validate(NewUserID(), PrefixBoard); err == nil {
		t.Error("Validate should reject a mismatched prefix")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if err := Validate("not a typeid", PrefixUser); err == nil {
		t.Error("Validate should reject malformed ids")
	}
}
