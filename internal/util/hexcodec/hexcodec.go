// Package hexcodec converts between raw bytes and the lowercase hex text used
// at every file and log boundary.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHexFormat is returned for odd-length input, non-hex characters,
// or a decoded value of the wrong width.
var ErrInvalidHexFormat = errors.New("invalid hex format")

// HexFromBytes renders b as lowercase hex, two digits per byte.
func HexFromBytes(b []byte) string { return hex.EncodeToString(b) }

// BytesFromHex decodes text. Upper-case digits are accepted.
func BytesFromHex(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHexFormat, len(text))
	}
	b, err := hex.DecodeString(text)
	if err != nil {
		var ib hex.InvalidByteError
		if errors.As(err, &ib) {
			return nil, fmt.Errorf("%w: invalid character %q", ErrInvalidHexFormat, byte(ib))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexFormat, err)
	}
	return b, nil
}

// DecodeFixed decodes text into dst and requires exactly len(dst) bytes.
func DecodeFixed(dst []byte, text string) error {
	b, err := BytesFromHex(text)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidHexFormat, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}
