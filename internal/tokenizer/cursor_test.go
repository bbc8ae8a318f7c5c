package tokenizer

import "testing"

// TestCursorSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor("a\nb")
	for _, want := range []byte{'a', '\n', 'b'} {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.Peek(); got != want {
			t.Errorf("Peek() = %q, want %q", got, want)
		}
		if got := c.Bump(); got != want {
			t.Errorf("Bump() = %q, want %q", got, want)
		}
	}
	if !c.EOF() {
		t.Error("expected EOF at end")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("expected zero bytes at EOF")
	}
}

func TestCursorSpanFrom(t *testing.T) {
	c := NewCursor("hello")
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 || sp.Len() != 2 {
		t.Errorf("SpanFrom = %+v, want 1..3", sp)
	}
	if sp.String() != "1..3" {
		t.Errorf("String() = %q", sp.String())
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor("")
	if !c.EOF() {
		t.Error("empty cursor must be at EOF")
	}
}
