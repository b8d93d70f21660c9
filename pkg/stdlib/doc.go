// Package stdlib holds Go conversions of the C memory primitives: the chunked
// memcpy family ([MemCopy], [MemCopyBus], [MemCopy8] through [MemCopy64]),
// [MemCmp] and [Memset]. All of them are supported API and operate on byte
// slices the caller owns.
package stdlib
