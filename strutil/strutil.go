package strutil

import (
	"encoding/hex"
)

const upperHex = "0123456789ABCDEF"

// ------ hexadecimal

// AppendHex appends the lowercase hexadecimal encoding of src to dst and returns the extended buffer.
func AppendHex(dst, src []byte) []byte {
	return hex.AppendEncode(dst, src)
}

// BytesToHex returns the lowercase hexadecimal encoding of b.
// The result is always 2*len(b) characters long.
func BytesToHex(b []byte) string {
	return string(AppendHex(make([]byte, 0, hex.EncodedLen(len(b))), b))
}

// StringToHex is BytesToHex applied to the bytes of s.
func StringToHex(s string) string {
	return BytesToHex([]byte(s))
}

// ------ URL encoding

// IsUnreserved reports whether c is left as-is by the URL encoding.
func IsUnreserved(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		c == '-' || c == '_' || c == '.'
}

// EncodedURLLen returns the length of the URL encoding of b.
func EncodedURLLen(b []byte) int {
	n := len(b)

	for _, c := range b {
		if !IsUnreserved(c) && c != ' ' {
			n += 2
		}
	}

	return n
}

// AppendURLEncode appends the URL encoding of src to dst and returns the extended buffer.
func AppendURLEncode(dst, src []byte) []byte {
	for _, c := range src {
		switch {
		case IsUnreserved(c):
			dst = append(dst, c)
		case c == ' ':
			dst = append(dst, '+')
		default:
			dst = append(dst, '%', upperHex[c>>4], upperHex[c&0x0f])
		}
	}

	return dst
}

// BytesURLEncode returns the URL encoding of b.
func BytesURLEncode(b []byte) string {
	return string(AppendURLEncode(make([]byte, 0, EncodedURLLen(b)), b))
}

// StringURLEncode is BytesURLEncode applied to the bytes of s.
//
//	StringURLEncode("abc def/ghi%jkl") == "abc+def%2Fghi%25jkl"
func StringURLEncode(s string) string {
	return BytesURLEncode([]byte(s))
}
