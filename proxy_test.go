package dia

import (
	"bytes"
	"testing"

	"github.com/gregoryv/dia/diatest"
)

func TestGraphProxy(t *testing.T) {
	p := NewGraphProxy()
	spy := &diatest.Called{}
	p.real = spy

	var buf bytes.Buffer
	p.SetOutput(&buf)
	p.Draw()

	if len(spy.Calls) > 0 {
		t.Error("proxy reached the real diagram:", spy.Calls)
	}
	exp := "[Graph Proxy] Drawing graphical + textual stub\n"
	if got := buf.String(); got != exp {
		t.Errorf("got %q expected %q", got, exp)
	}
}
