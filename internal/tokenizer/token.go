package tokenizer

import "fmt"

// Span is a half-open byte range [Start, End) in the decoded source.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns End - Start.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a maximal non-empty run of non-separator bytes.
type Token struct {
	Text string
	Span Span
}
