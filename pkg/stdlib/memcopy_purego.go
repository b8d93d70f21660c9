//go:build purego

package stdlib

import "encoding/binary"

func copy16(dst, src []byte) {
	for i := 0; i+2 <= len(dst); i += 2 {
		binary.NativeEndian.PutUint16(dst[i:], binary.NativeEndian.Uint16(src[i:]))
	}
}

func copy32(dst, src []byte) {
	for i := 0; i+4 <= len(dst); i += 4 {
		binary.NativeEndian.PutUint32(dst[i:], binary.NativeEndian.Uint32(src[i:]))
	}
}

func copy64(dst, src []byte) {
	for i := 0; i+8 <= len(dst); i += 8 {
		binary.NativeEndian.PutUint64(dst[i:], binary.NativeEndian.Uint64(src[i:]))
	}
}
