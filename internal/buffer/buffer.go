package buffer

// Builder accumulates plain text and tracks the current UTF-16 offset.
type Builder struct {
	parts       []string
	utf16Offset int
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		parts: make([]string, 0),
	}
}

// Write appends text to the builder.
func (b *Builder) Write(text string) {
	b.parts = append(b.parts, text)
	b.utf16Offset += UTF16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (b *Builder) UTF16Offset() int {
	return b.utf16Offset
}

// TrailingNewlineCount counts trailing newline characters in the builder.
func (b *Builder) TrailingNewlineCount() int {
	count := 0
	for i := len(b.parts) - 1; i >= 0; i-- {
		part := b.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// LineCount returns the number of newline characters written so far.
func (b *Builder) LineCount() int {
	count := 0
	for _, p := range b.parts {
		for i := 0; i < len(p); i++ {
			if p[i] == '\n' {
				count++
			}
		}
	}
	return count
}

// String returns the accumulated text.
func (b *Builder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range b.parts {
		totalLen += len(p)
	}
	result := make([]byte, 0, totalLen)
	for _, p := range b.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Text freezes the accumulated text.
func (b *Builder) Text() *Text {
	return NewText(b.String())
}

// Reset clears the builder.
func (b *Builder) Reset() {
	b.parts = b.parts[:0]
	b.utf16Offset = 0
}
