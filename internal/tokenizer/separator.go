package tokenizer

// SeparatorSet is a 256-bit byte membership table. The zero value contains nothing.
type SeparatorSet struct {
	bits [4]uint64
}

// NewSeparatorSet builds a set from every byte of seps. Duplicates are ignored.
func NewSeparatorSet(seps string) SeparatorSet {
	var s SeparatorSet
	for i := 0; i < len(seps); i++ {
		b := seps[i]
		s.bits[b>>6] |= 1 << (b & 63)
	}
	return s
}

// Contains reports whether b is a separator.
func (s SeparatorSet) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of distinct separator bytes.
func (s SeparatorSet) Len() int {
	n := 0
	for i := 0; i < 256; i++ {
		if s.Contains(byte(i)) {
			n++
		}
	}
	return n
}

// String returns the separators in ascending byte order.
func (s SeparatorSet) String() string {
	out := make([]byte, 0, 8)
	for i := 0; i < 256; i++ {
		if s.Contains(byte(i)) {
			out = append(out, byte(i))
		}
	}
	return string(out)
}
