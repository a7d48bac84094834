// Package encoding provides text encoding utilities for legacy asset formats.
package encoding

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Latin1ToUTF8 converts ISO 8859-1 encoded bytes to a UTF-8 string.
// Returns the bytes reinterpreted as-is if conversion fails.
func Latin1ToUTF8(data []byte) string {
	decoder := charmap.ISO8859_1.NewDecoder()
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	return string(result)
}

// UTF8ToLatin1 converts a UTF-8 string to ISO 8859-1 encoded bytes.
// Returns the original bytes if the string cannot be represented.
func UTF8ToLatin1(s string) []byte {
	encoder := charmap.ISO8859_1.NewEncoder()
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return []byte(s)
	}
	return result
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// TrimNullString removes trailing null bytes and converts to string.
func TrimNullString(data []byte) string {
	return string(TrimNullBytes(data))
}

// FixedStringToUTF8 converts a fixed-size Latin-1 encoded byte array to a
// UTF-8 string. Handles null termination and encoding conversion.
func FixedStringToUTF8(data []byte) string {
	nullIdx := bytes.IndexByte(data, 0)
	if nullIdx >= 0 {
		data = data[:nullIdx]
	}
	return Latin1ToUTF8(data)
}

// UTF8ToFixedString converts a UTF-8 string to a fixed-size Latin-1 encoded
// byte array. Pads with null bytes to fill the specified size.
func UTF8ToFixedString(s string, size int) []byte {
	result := make([]byte, size)
	copy(result, UTF8ToLatin1(s))
	return result
}
