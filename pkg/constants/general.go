package constants

import "unsafe"

// WORD_SIZE is the natural word size of the target architecture, in bytes.
const WORD_SIZE = int(unsafe.Sizeof(uintptr(0)))
