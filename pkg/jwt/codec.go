package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Split breaks a compact token into its header, payload and signature segments.
// Exactly three non-empty dot-separated segments are required.
func Split(token string) (header, payload, signature string, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", "", "", ErrMalformedToken
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", ErrMalformedToken
		}
	}
	return parts[0], parts[1], parts[2], nil
}

// EncodeSegment encodes data using base64url encoding without padding.
func EncodeSegment(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// DecodeSegment decodes an unpadded base64url segment.
// Padding is restored from the segment length before decoding; a length of
// 1 mod 4 can never be produced by an encoder and is rejected.
func DecodeSegment(s string) ([]byte, error) {
	// The stdlib decoder silently skips CR and LF, so the alphabet is checked up front.
	for i := 0; i < len(s); i++ {
		if !isURLAlphabet(s[i]) {
			return nil, ErrMalformedToken
		}
	}

	switch len(s) % 4 {
	case 1:
		return nil, ErrMalformedToken
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return data, nil
}

func isURLAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

// ParseJSON parses a UTF-8 encoded JSON object.
// Arrays, scalars, null and trailing data at the top level are rejected.
// Numbers are kept as json.Number so integer claims survive unchanged.
func ParseJSON(data []byte) (map[string]any, error) {
	if !utf8.Valid(data) {
		return nil, ErrMalformedToken
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if obj == nil {
		return nil, ErrMalformedToken
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrMalformedToken
	}
	return obj, nil
}
