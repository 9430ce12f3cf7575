package insts

import (
	"errors"
	"fmt"
)

// ErrUnallocated is wrapped by every decode failure. The word is reserved or
// unallocated in the A64 encoding space.
var ErrUnallocated = errors.New("unallocated encoding")

// DecodeError reports a word the architecture does not allocate.
type DecodeError struct {
	Word  uint32
	Addr  uint64
	Class string // encoding class the word was rejected in
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("insts: unallocated %s encoding 0x%08x at 0x%x", e.Class, e.Word, e.Addr)
}

// Unwrap lets errors.Is match ErrUnallocated.
func (e *DecodeError) Unwrap() error {
	return ErrUnallocated
}

func unallocated(class string) error {
	return &DecodeError{Class: class}
}
