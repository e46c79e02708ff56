package sessiontoken

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Claims — открытое отображение имен claim на значения из payload токена.
type Claims map[string]any

// header фиксирован: алгоритм и тип не настраиваются на вызов.
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var fixedHeader = header{Alg: "HS256", Typ: "JWT"}

// buildSigningInput собирает вход подписи: encode(header) + "." + encode(payload).
func buildSigningInput(payload Claims) (string, error) {
	const op = "sessiontoken.buildSigningInput"
	headerJSON, err := json.Marshal(fixedHeader)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return EncodeSegment(headerJSON) + "." + EncodeSegment(payloadJSON), nil
}

// splitToken разбивает токен на три сегмента. Токен из любого другого числа
// сегментов или с пустым сегментом считается испорченным.
func splitToken(token string) (headerSeg, payloadSeg, signatureSeg string, err error) {
	const op = "sessiontoken.splitToken"
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}
	return parts[0], parts[1], parts[2], nil
}

// decodePayload декодирует и разбирает payload-сегмент в отображение claims.
func decodePayload(payloadSeg string) (Claims, error) {
	const op = "sessiontoken.decodePayload"
	raw, err := DecodeSegment(payloadSeg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}
	return claims, nil
}
