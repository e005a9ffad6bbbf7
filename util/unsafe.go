package util

import (
	"unsafe"
)

// Convert []byte to string without alloc.
//
// The []byte and the string share the same memory; modifying the original
// []byte is reflected on the returned string.
func UnsafeByt2Str(b []byte) string {
	if len(b) < 1 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Convert string to []byte without alloc.
//
// The resulting []byte shares memory with the string and must not be modified,
// program panics if it is.
func UnsafeStr2Byt(s string) (b []byte) {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
