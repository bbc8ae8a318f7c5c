package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"", LevelOff, false},
		{"off", LevelOff, false},
		{"ERROR", LevelError, false},
		{"phase", LevelPhase, false},
		{" debug ", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelOff.ShouldEmit(ScopeError) {
		t.Error("off must not emit")
	}
	if !LevelError.ShouldEmit(ScopeError) || LevelError.ShouldEmit(ScopeDriver) {
		t.Error("error level must emit only errors")
	}
	if !LevelPhase.ShouldEmit(ScopePhase) || LevelPhase.ShouldEmit(ScopeToken) {
		t.Error("phase level must stop above tokens")
	}
	if !LevelDebug.ShouldEmit(ScopeToken) {
		t.Error("debug level must emit tokens")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	root := Begin(tr, ScopeDriver, "run", 0)
	Point(tr, ScopeToken, "token", "abc", root.ID(), map[string]string{"span": "0..3", "a": "1"})
	root.WithExtra("tokens", "1").End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ run") {
		t.Errorf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "  • token (abc) {a=1, span=0..3}") {
		t.Errorf("point line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "← run (ok) {tokens=1}") {
		t.Errorf("end line = %q", lines[2])
	}
}

func TestStreamTracerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	Point(tr, ScopeToken, "token", "x", 0, nil)
	if buf.Len() != 0 {
		t.Errorf("token point leaked at phase level: %q", buf.String())
	}
	sp := Begin(tr, ScopePhase, "tokenize", 0)
	sp.End("")
	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("expected begin/end lines, got %q", buf.String())
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePhase, "decode", 0).End("done")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if ev["name"] != "decode" {
			t.Errorf("name = %v", ev["name"])
		}
		kinds = append(kinds, ev["kind"].(string))
	}
	if len(kinds) != 2 || kinds[0] != "begin" || kinds[1] != "end" {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("off tracer must be disabled")
	}
	sp := Begin(tr, ScopeDriver, "run", 0)
	if sp.ID() != 0 {
		t.Error("disabled span must have zero ID")
	}
	sp.WithExtra("k", "v").End("")
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer not found in context")
	}
	if FromContext(WithTracer(context.Background(), nil)) != Nop {
		t.Error("nil tracer must be replaced by Nop")
	}
}

func TestSpanContext(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if CurrentSpan(ctx) != 0 {
		t.Error("no span expected")
	}
	root := Begin(tr, ScopeDriver, "run", 0)
	ctx = WithSpan(ctx, root)
	if CurrentSpan(ctx) != root.ID() {
		t.Errorf("CurrentSpan = %d, want %d", CurrentSpan(ctx), root.ID())
	}
	if got := WithSpan(ctx, &Span{}); CurrentSpan(got) != root.ID() {
		t.Error("disabled span must not replace the active one")
	}
}
