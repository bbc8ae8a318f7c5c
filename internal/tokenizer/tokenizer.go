package tokenizer

// Tokenizer holds the tokens of one source string and hands them out in order.
type Tokenizer struct {
	seps   SeparatorSet
	tokens []Token
	pos    int
}

// New splits source on every byte of separators. All work happens here;
// Next only walks the result.
func New(separators, source string) *Tokenizer {
	tk := &Tokenizer{seps: NewSeparatorSet(separators)}
	tk.scan(source)
	return tk
}

func (tk *Tokenizer) scan(src string) {
	cur := NewCursor(src)
	start := cur.Mark()
	for !cur.EOF() {
		if !tk.seps.Contains(cur.Peek()) {
			cur.Bump()
			continue
		}
		tk.emit(src, cur.SpanFrom(start))
		cur.Bump()
		start = cur.Mark()
	}
	tk.emit(src, cur.SpanFrom(start))
}

// emit пропускает пустые отрезки: подряд идущие разделители и края строки
func (tk *Tokenizer) emit(src string, sp Span) {
	if sp.Len() == 0 {
		return
	}
	tk.tokens = append(tk.tokens, Token{Text: src[sp.Start:sp.End], Span: sp})
}

// Next returns the next token. ok is false once the sequence is exhausted,
// and stays false on every later call.
func (tk *Tokenizer) Next() (tok Token, ok bool) {
	if tk.pos >= len(tk.tokens) {
		return Token{}, false
	}
	tok = tk.tokens[tk.pos]
	tk.tokens[tk.pos] = Token{}
	tk.pos++
	return tok, true
}

// Len returns how many tokens Next has yet to yield.
func (tk *Tokenizer) Len() int {
	return len(tk.tokens) - tk.pos
}

// Tokens returns a copy of the remaining tokens without consuming them.
func (tk *Tokenizer) Tokens() []Token {
	rest := tk.tokens[tk.pos:]
	out := make([]Token, len(rest))
	copy(out, rest)
	return out
}

// Separators returns the set the tokenizer was built with.
func (tk *Tokenizer) Separators() SeparatorSet {
	return tk.seps
}

// Split is a convenience wrapper returning the token texts only.
func Split(separators, source string) []string {
	tk := New(separators, source)
	out := make([]string, 0, tk.Len())
	for tok, ok := tk.Next(); ok; tok, ok = tk.Next() {
		out = append(out, tok.Text)
	}
	return out
}
