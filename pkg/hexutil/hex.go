// Package hexutil holds small helpers for writing byte fixtures as hex text.
package hexutil

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex constructs a byte slice from a series of hex strings.
func Hex(parts ...string) []byte {
	fullHex := strings.Join(parts, "")
	// Clean up spaces to allow format like "A0 A1 A2"
	cleanHex := strings.ReplaceAll(fullHex, " ", "")

	data, err := hex.DecodeString(cleanHex)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", cleanHex, err))
	}
	return data
}

// Fill returns a slice of n bytes all set to b.
func Fill(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}
