package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"a": 1}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\"a\":1}\n" {
		t.Fatalf("got %q", got)
	}

	buf.Reset()
	if err := Write(&buf, map[string]int{"a": 1}, "", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1\n") {
		t.Fatalf("got %q", buf.String())
	}

	if err := Write(&buf, nil, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
