// Package sl содержит вспомогательные функции для структурированных полей slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки —
// единообразный способ вывода ошибок в лог по всему сервису.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Masked возвращает slog.Attr, скрывающий чувствительное значение.
// Пишется только факт наличия: секреты и пароли не должны попадать в лог.
func Masked(key, value string) slog.Attr {
	masked := "<empty>"
	if value != "" {
		masked = "***"
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(masked),
	}
}
