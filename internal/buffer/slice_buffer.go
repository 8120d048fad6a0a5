// internal/buffer/slice_buffer.go
package buffer

import "fmt"

// SliceBuffer keeps the text in a single contiguous byte slice.
type SliceBuffer struct {
	data []byte
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{data: make([]byte, 0, 64)}
}

// Len returns the number of bytes stored.
func (sb *SliceBuffer) Len() int {
	return len(sb.data)
}

// At returns the byte at index.
func (sb *SliceBuffer) At(index int) (byte, error) {
	if index < 0 || index >= len(sb.data) {
		return 0, fmt.Errorf("at %d (length %d): %w", index, len(sb.data), ErrOutOfRange)
	}
	return sb.data[index], nil
}

// Insert places ch before index. Valid indices are 0..Len().
func (sb *SliceBuffer) Insert(index int, ch byte) error {
	if index < 0 || index > len(sb.data) {
		return fmt.Errorf("insert at %d (length %d): %w", index, len(sb.data), ErrOutOfRange)
	}
	sb.data = append(sb.data, 0)
	copy(sb.data[index+1:], sb.data[index:])
	sb.data[index] = ch
	return nil
}

// Delete removes the byte at index. Valid indices are 0..Len()-1.
func (sb *SliceBuffer) Delete(index int) (byte, error) {
	if index < 0 || index >= len(sb.data) {
		return 0, fmt.Errorf("delete at %d (length %d): %w", index, len(sb.data), ErrOutOfRange)
	}
	removed := sb.data[index]
	sb.data = append(sb.data[:index], sb.data[index+1:]...)
	return removed, nil
}

// Bytes returns a copy of the contents; callers may keep or modify it.
func (sb *SliceBuffer) Bytes() []byte {
	out := make([]byte, len(sb.data))
	copy(out, sb.data)
	return out
}

func (sb *SliceBuffer) String() string {
	return string(sb.data)
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
