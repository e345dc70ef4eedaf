package tweets

// A TextValue is an immutable run of bytes with a known length.
//
// The zero value is the empty text. Every operation that changes content
// returns a new value; the receiver is never modified.
type TextValue struct {
	s string
}

// NewText wraps s.
func NewText(s string) TextValue {
	return TextValue{s: s}
}

// TextFromRange returns the bytes of src in [begin, end). The result shares
// src's immutable backing string. An empty range is valid and yields the
// empty text.
func TextFromRange(src TextValue, begin, end int) (TextValue, error) {
	if begin < 0 || begin > len(src.s) {
		return TextValue{}, &IndexError{Index: begin, Length: len(src.s)}
	}
	if end < begin || end > len(src.s) {
		return TextValue{}, &IndexError{Index: end, Length: len(src.s)}
	}
	return TextValue{s: src.s[begin:end]}, nil
}

// Len returns the number of stored bytes.
func (t TextValue) Len() int {
	return len(t.s)
}

// At returns the byte at position i. It never clamps: any i outside
// [0, Len()) yields an *IndexError.
func (t TextValue) At(i int) (byte, error) {
	if i < 0 || i >= len(t.s) {
		return 0, &IndexError{Index: i, Length: len(t.s)}
	}
	return t.s[i], nil
}

// Concat returns a followed by b.
func Concat(a, b TextValue) TextValue {
	return TextValue{s: a.s + b.s}
}

// Equals reports whether a and b hold the same bytes.
func Equals(a, b TextValue) bool {
	return a.s == b.s
}

// Equal is the method form of Equals.
func (t TextValue) Equal(other TextValue) bool {
	return Equals(t, other)
}

// ToLower returns a copy with ASCII letters lowered. Other bytes pass
// through unchanged.
func (t TextValue) ToLower() TextValue {
	buf := []byte(t.s)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return TextValue{s: string(buf)}
}

// Substring returns at most count bytes starting at start. The result is
// empty when start is at or past the end, or when count is zero.
func (t TextValue) Substring(start, count int) TextValue {
	if start < 0 || start >= len(t.s) || count <= 0 {
		return TextValue{}
	}
	if count > len(t.s)-start {
		count = len(t.s) - start
	}
	return TextValue{s: t.s[start : start+count]}
}

// Hash is a base-31 polynomial hash over every byte. Equal values always
// hash equal.
func (t TextValue) Hash() uint64 {
	var h uint64
	for i := 0; i < len(t.s); i++ {
		h = h*31 + uint64(t.s[i])
	}
	return h
}

// String returns the content as a Go string.
func (t TextValue) String() string {
	return t.s
}

// IsEmpty reports whether the value holds no bytes.
func (t TextValue) IsEmpty() bool {
	return len(t.s) == 0
}
