package sessiontoken

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeSegment кодирует байты в base64url без '=' — алфавит, безопасный
// для URL и значений cookie.
func EncodeSegment(raw []byte) string {
	s := base64.StdEncoding.EncodeToString(raw)
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")
	return strings.TrimRight(s, "=")
}

// DecodeSegment декодирует base64url-сегмент, восстанавливая отброшенный
// padding. Возвращает ErrDecode при символах вне алфавита или невозможной
// длине сегмента.
func DecodeSegment(text string) ([]byte, error) {
	const op = "sessiontoken.DecodeSegment"
	s := strings.ReplaceAll(text, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if rem := len(s) % 4; rem != 0 {
		// Длина 4n+1 недостижима ни для какого входа base64.
		if rem == 1 {
			return nil, fmt.Errorf("%s: %w", op, ErrDecode)
		}
		s += strings.Repeat("=", 4-rem)
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrDecode)
	}
	return raw, nil
}
