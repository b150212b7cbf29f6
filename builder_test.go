package dia

import (
	"bytes"
	"testing"
)

func TestDirector_Construct(t *testing.T) {
	var buf bytes.Buffer
	p := NewGraphProxy()
	p.SetOutput(&buf)
	b := NewBarBuilder(p)
	b.SetOutput(&buf)

	NewDirector(b).Construct("(15,30)")

	exp := `Bar calc at (15,30)
[Graph Proxy] Drawing graphical + textual stub
Drag Bar at (15,30)
`
	if got := buf.String(); got != exp {
		t.Errorf("got\n%s\nexpected\n%s", got, exp)
	}
}

func TestGraphBuilder_sharedDrawer(t *testing.T) {
	var buf bytes.Buffer
	p := NewGraphProxy()
	p.SetOutput(&buf)

	bar := NewBarBuilder(p)
	line := NewLineBuilder(p)
	bar.Draw()
	line.Draw()

	exp := `[Graph Proxy] Drawing graphical + textual stub
[Graph Proxy] Drawing graphical + textual stub
`
	if got := buf.String(); got != exp {
		t.Errorf("got\n%s\nexpected\n%s", got, exp)
	}
}
