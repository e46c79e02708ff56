// Package sessioncookie привязывает сессионный токен к HTTP cookie:
// извлечение токена из заголовка Cookie входящего запроса и сборка
// заголовка Set-Cookie для установки и сброса сессии.
package sessioncookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Name — имя сессионной cookie административной панели.
const Name = "auth_token"

// DefaultPath — путь, которым ограничена сессионная cookie.
const DefaultPath = "/admin"

// Options — атрибуты сессионной cookie.
// Нулевое значение дает безопасные настройки: Path=/admin, Secure,
// SameSite=Strict. Insecure выставляется только в тестовых окружениях
// без TLS.
type Options struct {
	Path     string
	SameSite string
	Insecure bool
}

func (o Options) withDefaults() Options {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.SameSite == "" {
		o.SameSite = "Strict"
	}
	return o
}

// Extract достает токен сессии из заголовка Cookie запроса.
// Возвращает false, если заголовка нет или именованная cookie отсутствует.
//
// Значение — остаток после первого '='. Алфавит токена (base64url без
// padding) не содержит '=', поэтому усечение безопасно; смена алфавита
// токена на содержащий '=' потребует пересмотра этого разбора.
func Extract(r *http.Request) (string, bool) {
	header := r.Header.Get("Cookie")
	if header == "" {
		return "", false
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, found := strings.CutPrefix(part, Name+"="); found {
			return value, true
		}
	}
	return "", false
}

// Build собирает значение заголовка Set-Cookie с сессионным токеном.
func Build(token string, maxAgeSeconds int, opts Options) string {
	opts = opts.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s; Path=%s; Max-Age=%d; HttpOnly", Name, token, opts.Path, maxAgeSeconds)
	if !opts.Insecure {
		b.WriteString("; Secure")
	}
	b.WriteString("; SameSite=" + opts.SameSite)
	return b.String()
}

// Clear возвращает каноническую форму сброса сессии: Max-Age=0 заставляет
// браузер удалить cookie и не пересылать заведомо негодный токен.
func Clear(opts Options) string {
	return Build("", 0, opts)
}
