// internal/buffer/buffer.go
package buffer

import "errors"

// ErrOutOfRange is returned (wrapped) when an index falls outside the buffer.
var ErrOutOfRange = errors.New("index out of range")

// Buffer defines the byte-level storage operations the editor needs.
type Buffer interface {
	Len() int
	At(index int) (byte, error)
	// Insert places ch before index; index == Len() appends.
	Insert(index int, ch byte) error
	// Delete removes and returns the byte at index.
	Delete(index int) (byte, error)
	Bytes() []byte
	String() string
}
