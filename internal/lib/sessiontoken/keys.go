package sessiontoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// SigningKey — симметричный ключ HMAC-SHA256, пригодный и для подписи,
// и для проверки. Выводится из секрета заново при каждой операции:
// ротация секрета мгновенно инвалидирует все ранее выданные токены.
type SigningKey []byte

// DeriveKey выводит ключ подписи из сырого секрета.
// Пустой секрет — ошибка конфигурации, а не ошибка запроса.
func DeriveKey(secret string) (SigningKey, error) {
	const op = "sessiontoken.DeriveKey"
	if secret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	return SigningKey(secret), nil
}

// Sign возвращает сырые байты подписи HMAC-SHA256 над UTF-8 байтами входа.
func (k SigningKey) Sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, k)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}

// Matches пересчитывает подпись и сравнивает с переданной за постоянное время.
func (k SigningKey) Matches(signingInput string, signature []byte) bool {
	return hmac.Equal(k.Sign(signingInput), signature)
}
