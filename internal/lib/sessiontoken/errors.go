package sessiontoken

import "errors"

// Ошибки подсистемы сессионных токенов.
//
// ErrEmptySecret — ошибка конфигурации: сервис не может работать без секрета,
// она всегда фатальна для операции и должна подниматься до оператора.
// Остальные ошибки описывают дефекты конкретного токена и на стороне
// проверки схлопываются в единый результат "не аутентифицирован".
var (
	// ErrEmptySecret возвращается, если секрет подписи пуст.
	ErrEmptySecret = errors.New("session secret is empty")
	// ErrDecode возвращается при некорректном base64url-сегменте.
	ErrDecode = errors.New("malformed base64url segment")
	// ErrMalformedToken возвращается, если токен не состоит из трех
	// непустых сегментов или payload не является корректным JSON.
	ErrMalformedToken = errors.New("malformed session token")
	// ErrIssuance возвращается при неожиданном сбое подписи нового токена.
	ErrIssuance = errors.New("failed to issue session token")
	// ErrInvalidToken возвращается при попытке перевыпустить невалидный токен.
	ErrInvalidToken = errors.New("session token is not valid")
)
