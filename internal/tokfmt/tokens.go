// Package tokfmt renders tokens for terminal output.
package tokfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tokenizer/internal/escape"
	"tokenizer/internal/tokenizer"
)

// Render returns text with every escape-set byte replaced by [0xHH].
func Render(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if escape.IsEscapeChar(b) {
			fmt.Fprintf(&sb, "[0x%02x]", b)
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// FormatTokens выводит оставшиеся токены по одному на строку, потребляя tk.
// Возвращает количество выведенных токенов.
func FormatTokens(w io.Writer, tk *tokenizer.Tokenizer) (int, error) {
	return FormatTokensFunc(w, tk, nil)
}

// FormatTokensFunc is FormatTokens with a callback invoked for each token
// after it has been written.
func FormatTokensFunc(w io.Writer, tk *tokenizer.Tokenizer, each func(tokenizer.Token)) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for tok, ok := tk.Next(); ok; tok, ok = tk.Next() {
		if _, err := bw.WriteString(Render(tok.Text)); err != nil {
			return n, fmt.Errorf("failed to write token: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("failed to write token: %w", err)
		}
		n++
		if each != nil {
			each(tok)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush output: %w", err)
	}
	return n, nil
}
