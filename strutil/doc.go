// Package strutil encodes byte sequences and strings as lowercase hexadecimal or as
// form-style percent-encoded text.
//
// The URL encoding keeps ASCII letters, digits, '-', '_' and '.' as they are, turns the
// space into '+', and escapes every other byte as %XX with uppercase digits. Note that
// '~' is escaped, unlike net/url.QueryEscape.
//
// Every function is pure and safe for concurrent use. Strings are processed as their
// underlying UTF-8 bytes, so a multi-byte character yields one %XX triple per byte.
package strutil
