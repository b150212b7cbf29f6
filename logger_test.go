package dia

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	id := "1bbde752-5161-11ed-a94b-675e009b6f46"
	l.SetLogPrefix(id)

	// trimmed prefix
	l.Print("hello")
	if v := buf.String(); !strings.HasPrefix(v, "~75e009b6f46") {
		t.Error(v)
	}
}

func TestLogger_Debug(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debug("quiet")
	if buf.Len() > 0 {
		t.Error("debug disabled, got", buf.String())
	}

	l.SetDebug(true)
	l.Debug("loud")
	if v := buf.String(); !strings.Contains(v, "loud") {
		t.Error(v)
	}
}

func TestLogger_noTrim(t *testing.T) {
	l := NewLogger()
	l.SetMaxIDLen(0)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetLogPrefix("short")
	l.Print("x")
	if v := buf.String(); !strings.HasPrefix(v, "short ") {
		t.Error(v)
	}
}
