package driver

import (
	"context"
	"io"
	"strconv"

	"tokenizer/internal/escape"
	"tokenizer/internal/observ"
	"tokenizer/internal/tokenizer"
	"tokenizer/internal/tokfmt"
	"tokenizer/internal/trace"
)

// TokenizeResult holds the decoded source and the ready-to-drain tokenizer.
// The decoded separators are available as Tokenizer.Separators().
type TokenizeResult struct {
	Source    string
	Tokenizer *tokenizer.Tokenizer
}

// Tokenize decodes both raw arguments and builds the tokenizer.
// timer may be nil.
func Tokenize(ctx context.Context, rawSeparators, rawSource string, timer *observ.Timer) *TokenizeResult {
	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	// Декодируем escape-последовательности в обоих аргументах
	idx := timer.Begin("decode")
	sp := trace.Begin(tr, trace.ScopePhase, "decode", parent)
	seps := escape.Decode(rawSeparators)
	src := escape.Decode(rawSource)
	sp.WithExtra("separators", strconv.Itoa(len(seps))).
		WithExtra("source", strconv.Itoa(len(src))).
		End("")
	timer.End(idx, strconv.Itoa(len(rawSeparators)+len(rawSource))+" raw bytes")

	idx = timer.Begin("tokenize")
	sp = trace.Begin(tr, trace.ScopePhase, "tokenize", parent)
	tk := tokenizer.New(seps, src)
	sp.WithExtra("separators", strconv.Quote(tk.Separators().String())).
		WithExtra("tokens", strconv.Itoa(tk.Len())).
		End("")
	timer.End(idx, strconv.Itoa(tk.Len())+" tokens")

	return &TokenizeResult{
		Source:    src,
		Tokenizer: tk,
	}
}

// Render drains res.Tokenizer into w, one rendered token per line.
func Render(ctx context.Context, w io.Writer, res *TokenizeResult, timer *observ.Timer) (int, error) {
	tr := trace.FromContext(ctx)

	idx := timer.Begin("render")
	sp := trace.Begin(tr, trace.ScopePhase, "render", trace.CurrentSpan(ctx))
	n, err := tokfmt.FormatTokensFunc(w, res.Tokenizer, func(tok tokenizer.Token) {
		trace.Point(tr, trace.ScopeToken, "token", strconv.Quote(tok.Text), sp.ID(),
			map[string]string{"span": tok.Span.String()})
	})
	if err != nil {
		trace.Point(tr, trace.ScopeError, "render", err.Error(), sp.ID(), nil)
		sp.End("failed")
		timer.End(idx, "failed")
		return n, err
	}
	sp.WithExtra("tokens", strconv.Itoa(n)).End("")
	timer.End(idx, strconv.Itoa(n)+" tokens")
	return n, nil
}
