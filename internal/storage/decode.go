package storage

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode reads r to the end and returns its content as UTF-8 text.
// Malformed byte sequences become U+FFFD and a leading byte order mark
// is consumed; a UTF-16 mark switches decoding to that encoding.
// Only errors from r itself are returned.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
