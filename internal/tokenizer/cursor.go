package tokenizer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в исходной строке
type Cursor struct {
	Src string
	Off uint32
	// Limit is the exclusive upper bound for Off; equals len(Src).
	Limit uint32
}

// NewCursor creates a cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{Src: src, Limit: limit}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Mark это метка начала текущего фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span between m and the current offset.
func (c *Cursor) SpanFrom(m Mark) Span {
	return Span{Start: uint32(m), End: c.Off}
}
