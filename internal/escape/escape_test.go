package escape

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"newline", `x\ny`, "x\ny"},
		{"all known", `\n\t\v\b\r\f\a\\\?\'\"`, "\n\t\v\b\r\f\a\\?'\""},
		{"unknown keeps char", `\q\z\1`, "qz1"},
		{"escaped space", `a\ b`, "a b"},
		{"double backslash then n", `\\n`, `\n`},
		{"trailing backslash", `abc\`, `abc\`},
		{"only backslash", `\`, `\`},
		{"utf8 passthrough", `при\tвет`, "при\tвет"},
		{"invalid utf8", "\xff\\n\xfe", "\xff\n\xfe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.raw); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestDecodeIdentity проверяет, что текст без '\' не меняется
func TestDecodeIdentity(t *testing.T) {
	inputs := []string{"", "a", "a b  c", ",,a,,", "\n\t", "\x00\x01\xff", strings.Repeat("xyz", 100)}
	for _, in := range inputs {
		if got := Decode(in); got != in {
			t.Errorf("Decode(%q) = %q, want identity", in, got)
		}
	}
}

func TestDecodeNeverGrows(t *testing.T) {
	inputs := []string{`\`, `\\`, `\\\`, `a\nb\`, `\x\y\z`, `\\\\\\\\n`}
	for _, in := range inputs {
		if got := Decode(in); len(got) > len(in) {
			t.Errorf("Decode(%q) grew to %d bytes (input %d)", in, len(got), len(in))
		}
	}
}

func TestLookup(t *testing.T) {
	known := map[byte]byte{
		'n': '\n', 't': '\t', 'v': '\v', 'b': '\b', 'r': '\r', 'f': '\f', 'a': '\a',
		'\\': '\\', '?': '?', '\'': '\'', '"': '"',
	}
	for in, want := range known {
		got, ok := Lookup(in)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}
	if got, ok := Lookup('x'); ok || got != 'x' {
		t.Errorf("Lookup('x') = %q, %v; want 'x', false", got, ok)
	}
}

func TestIsEscapeChar(t *testing.T) {
	for _, b := range []byte("\n\t\v\b\r\f\a\\?'\"") {
		if !IsEscapeChar(b) {
			t.Errorf("IsEscapeChar(0x%02x) = false", b)
		}
	}
	for _, b := range []byte("az09 ,.\x00\x7f") {
		if IsEscapeChar(b) {
			t.Errorf("IsEscapeChar(0x%02x) = true", b)
		}
	}
}
