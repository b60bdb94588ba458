// Package buffer holds the immutable text that spans annotate and the
// builder used to assemble it. Offsets are UTF-16 code units.
package buffer

import (
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Text is an immutable string with a UTF-16 offset table.
type Text struct {
	s string
	// u16[i] is the byte position of UTF-16 unit i; the second unit of a
	// surrogate pair maps to the start of the following rune.
	u16 []int

	fpOnce sync.Once
	fp     string
}

// NewText builds the offset table for s.
func NewText(s string) *Text {
	u16 := make([]int, 0, len(s)+1)
	for i, r := range s {
		u16 = append(u16, i)
		if r > 0xFFFF {
			u16 = append(u16, i+len(string(r)))
		}
	}
	u16 = append(u16, len(s))
	return &Text{s: s, u16: u16}
}

func (t *Text) String() string { return t.s }

// Len returns the length in UTF-16 code units.
func (t *Text) Len() int { return len(t.u16) - 1 }

// ByteOffset converts a UTF-16 offset to a byte offset, clamping to [0, len].
func (t *Text) ByteOffset(u16 int) int {
	if u16 <= 0 {
		return 0
	}
	if u16 >= len(t.u16) {
		return len(t.s)
	}
	return t.u16[u16]
}

// Slice returns the substring covering UTF-16 range [start, end).
func (t *Text) Slice(start, end int) string {
	a, b := t.ByteOffset(start), t.ByteOffset(end)
	if b < a {
		return ""
	}
	return t.s[a:b]
}

// Fingerprint is the hex BLAKE3 digest of the content. Span offsets are only
// meaningful against the text with the same fingerprint.
func (t *Text) Fingerprint() string {
	t.fpOnce.Do(func() {
		sum := blake3.Sum256([]byte(t.s))
		t.fp = hex.EncodeToString(sum[:])
	})
	return t.fp
}
