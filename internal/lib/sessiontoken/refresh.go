package sessiontoken

import "fmt"

// Refresh перевыпускает токен из уже валидного, продлевая сессию без
// повторного ввода учетных данных.
//
// Невалидный токен не перевыпускается — возвращается ErrInvalidToken.
// Из проверенных claims отбрасываются iat, exp, iss и aud: тайминги
// штампуются заново, а iss/aud всегда берутся из текущей конфигурации,
// чтобы токен с устаревшим издателем нельзя было продлевать бесконечно
// через границы деплоев.
func (m *Maker) Refresh(token string) (string, error) {
	const op = "sessiontoken.Refresh"

	claims, ok := m.Verify(token)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	custom := make(Claims, len(claims))
	for name, value := range claims {
		switch name {
		case "iat", "exp", "iss", "aud":
		default:
			custom[name] = value
		}
	}
	return m.Issue(custom)
}
