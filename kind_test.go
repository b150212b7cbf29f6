package dia

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"Graph", "Figure"} {
		k, err := ParseKind(s)
		if err != nil {
			t.Error(s, err)
		}
		if v := k.String(); v != s {
			t.Error("got", v, "expected", s)
		}
	}
}

func TestParseKind_unknown(t *testing.T) {
	for _, s := range []string{"Shape", "graph", ""} {
		if _, err := ParseKind(s); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("%q: %v", s, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"Bar", "Line"} {
		v, err := ParseVariant(s)
		if err != nil {
			t.Error(s, err)
		}
		if got := v.String(); got != s {
			t.Error("got", got, "expected", s)
		}
	}
}

func TestParseVariant_unknown(t *testing.T) {
	for _, s := range []string{"Pie", "bar", ""} {
		if _, err := ParseVariant(s); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("%q: %v", s, err)
		}
	}
}

func TestString_unknown(t *testing.T) {
	if v := Kind(99).String(); v != "unknown" {
		t.Error(v)
	}
	if v := Variant(99).String(); v != "unknown" {
		t.Error(v)
	}
}
