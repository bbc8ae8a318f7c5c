package escape

import "strings"

// Lookup возвращает литерал для буквы после '\'.
// ok == false означает, что пара не из таблицы и декодируется в сам символ.
func Lookup(b byte) (lit byte, ok bool) {
	switch b {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case 'b':
		return '\b', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'a':
		return '\a', true
	case '\\', '?', '\'', '"':
		return b, true
	default:
		return b, false
	}
}

// IsEscapeChar reports whether b is one of the decoded escape literals.
func IsEscapeChar(b byte) bool {
	switch b {
	case '\n', '\t', '\v', '\b', '\r', '\f', '\a', '\\', '?', '\'', '"':
		return true
	}
	return false
}

// Decode returns raw with every backslash pair replaced by the byte it denotes.
// The result is never longer than raw.
func Decode(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		if i+1 >= len(raw) {
			// висячий '\' в конце: оставляем как есть
			sb.WriteByte('\\')
			break
		}
		i++
		lit, _ := Lookup(raw[i])
		sb.WriteByte(lit)
	}
	return sb.String()
}
