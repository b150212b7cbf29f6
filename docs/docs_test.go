package docs

import "testing"

func TestNewDesignDiagram(t *testing.T) {
	if d := NewDesignDiagram(); d == nil {
		t.Fail()
	}
}

func TestNewGraphSequence(t *testing.T) {
	d := NewGraphSequence()
	if d == nil {
		t.Fail()
	}
	if v := d.ColWidth; v != 120 {
		t.Error("col width", v)
	}
}

func TestNewFigureSequence(t *testing.T) {
	d := NewFigureSequence()
	if d == nil {
		t.Fail()
	}
	if v := d.ColWidth; v != 120 {
		t.Error("col width", v)
	}
}
