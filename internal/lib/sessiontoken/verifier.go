package sessiontoken

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
)

// Verify проверяет подпись токена и валидирует его claims.
//
// Любой сбой — пустой токен, испорченная форма, несовпадение подписи,
// истекший exp, iat из будущего, чужой iss или aud — дает единый результат
// false: вызывающий не может отличить причину отказа, чтобы не отдавать
// атакующему оракул. Причина каждого отказа пишется в лог для оператора.
// Verify никогда не возвращает ошибку вызывающему.
func (m *Maker) Verify(token string) (Claims, bool) {
	const op = "sessiontoken.Verify"
	log := m.log.With(slog.String("op", op))

	if token == "" {
		log.Warn("session token is absent")
		return nil, false
	}

	headerSeg, payloadSeg, signatureSeg, err := splitToken(token)
	if err != nil {
		log.Warn("session token has malformed shape", sl.Err(err))
		return nil, false
	}

	key, err := DeriveKey(m.cfg.Secret)
	if err != nil {
		log.Error("session secret is not usable, verification is impossible", sl.Err(err))
		return nil, false
	}

	signature, err := DecodeSegment(signatureSeg)
	if err != nil {
		log.Warn("session token has malformed signature segment", sl.Err(err))
		return nil, false
	}

	// Подпись проверяется раньше разбора payload: ни одному claim нельзя
	// доверять до подтверждения целостности.
	signingInput := headerSeg + "." + payloadSeg
	if !key.Matches(signingInput, signature) {
		log.Warn("session token signature mismatch")
		return nil, false
	}

	claims, err := decodePayload(payloadSeg)
	if err != nil {
		log.Warn("session token has malformed payload", sl.Err(err))
		return nil, false
	}

	now := time.Now().Unix()
	exp, ok := numericClaim(claims["exp"])
	if !ok || exp <= now {
		log.Warn("session token is expired")
		return nil, false
	}
	iat, ok := numericClaim(claims["iat"])
	if !ok || iat > now {
		// Зазор на рассинхронизацию часов не предусмотрен.
		log.Warn("session token is issued in the future")
		return nil, false
	}
	if iss, _ := claims["iss"].(string); iss != m.cfg.Issuer {
		log.Warn("session token has unexpected issuer")
		return nil, false
	}
	if aud, _ := claims["aud"].(string); aud != m.cfg.Audience {
		log.Warn("session token has unexpected audience")
		return nil, false
	}

	return claims, true
}

// numericClaim приводит значение временного claim к epoch-секундам.
// encoding/json отдает числа как float64, собственный выпуск — как int64.
func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
