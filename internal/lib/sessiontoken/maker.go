// Package sessiontoken реализует выпуск, проверку и перевыпуск компактных
// подписанных токенов сессии административной панели.
//
// Токен — стандартная компактная сериализация JWS для HS256: три dot-сегмента
// base64url(header).base64url(payload).base64url(signature). Подсистема
// полностью stateless: сервер не хранит ни сессий, ни списка отзыва,
// валидный токен принимается до естественного истечения exp.
package sessiontoken

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultTTL — время жизни сессии по умолчанию.
const DefaultTTL = 8 * time.Hour

// Config — неизменяемая конфигурация подсистемы сессий. Собирается один раз
// на старте процесса и передается явно, а не через глобальное состояние,
// чтобы тесты могли поднимать независимые конфигурации параллельно.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Maker выпускает, проверяет и перевыпускает сессионные токены.
// Все операции чистые относительно аргументов и текущего времени,
// разделяемого изменяемого состояния нет.
type Maker struct {
	cfg Config
	log *slog.Logger
}

// New проверяет конфигурацию и создает Maker.
// Пустой секрет — фатальная ошибка конфигурации, сервис с ней не стартует.
func New(cfg Config, log *slog.Logger) (*Maker, error) {
	const op = "sessiontoken.New"
	if _, err := DeriveKey(cfg.Secret); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Maker{cfg: cfg, log: log}, nil
}
