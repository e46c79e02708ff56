package sessiontoken

import (
	"fmt"
	"time"

	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
)

// Issue выпускает новый подписанный токен с TTL из конфигурации.
func (m *Maker) Issue(custom Claims) (string, error) {
	return m.IssueWithTTL(custom, m.cfg.TTL)
}

// IssueWithTTL выпускает новый подписанный токен с заданным временем жизни.
//
// Стандартные claims (iat, exp, iss, aud) всегда штампуются заново поверх
// пользовательских: данные вызывающего не могут их переопределить.
func (m *Maker) IssueWithTTL(custom Claims, ttl time.Duration) (string, error) {
	const op = "sessiontoken.IssueWithTTL"

	key, err := DeriveKey(m.cfg.Secret)
	if err != nil {
		m.log.Error("session secret is not usable, issuance is impossible", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	claims := make(Claims, len(custom)+4)
	for name, value := range custom {
		claims[name] = value
	}
	now := time.Now().Unix()
	claims["iat"] = now
	claims["exp"] = now + int64(ttl/time.Second)
	claims["iss"] = m.cfg.Issuer
	claims["aud"] = m.cfg.Audience

	signingInput, err := buildSigningInput(claims)
	if err != nil {
		m.log.Error("failed to build signing input", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, ErrIssuance)
	}
	return signingInput + "." + EncodeSegment(key.Sign(signingInput)), nil
}
