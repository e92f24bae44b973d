package perf

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecodeBase64 decodes a base64 payload to UTF-8 text. The contents API
// wraps base64 lines with newlines, so those are stripped first.
func DecodeBase64(s string) (string, error) {
	cleaned := strings.ReplaceAll(s, "\n", "")
	cleaned = strings.TrimSpace(cleaned)
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("decoding contents: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoded contents are not valid UTF-8")
	}
	return string(data), nil
}
