package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// DecodeOutput decodes command output. Valid UTF-8 is kept as is, anything
// else is read as MacRoman, which is what older macOS tools still emit.
func DecodeOutput(input []byte) (string, error) {
	trimmedInput := bytes.TrimSpace(input)

	var decoded string

	if utf8.Valid(trimmedInput) {
		decoded = string(trimmedInput)
	} else {
		reader := charmap.Macintosh.NewDecoder().Reader(bytes.NewReader(trimmedInput))
		output, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}
		decoded = string(output)
	}

	return Label(decoded), nil
}

// Label returns s as valid, precomposed UTF-8 so "å" is one rune on screen
// whatever form it arrived in.
func Label(s string) string {
	return norm.NFC.String(strings.ToValidUTF8(s, ""))
}
