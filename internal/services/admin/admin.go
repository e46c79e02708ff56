// Package services содержит бизнес-логику аутентификации администратора.
package services

import (
	"errors"
	"fmt"

	"github.com/ifelse01-debug/subpool-admin/internal/config"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/password"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sessiontoken"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
// Наружу отдается один и тот же ответ вне зависимости от того,
// не совпало имя или пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService отвечает за вход администратора и перевыпуск сессии.
// Панель однопользовательская: учетные данные берутся из конфигурации,
// а не из хранилища пользователей.
type AuthService struct {
	cfg   config.Admin
	maker *sessiontoken.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(cfg config.Admin, maker *sessiontoken.Maker) *AuthService {
	return &AuthService{
		cfg:   cfg,
		maker: maker,
	}
}

// Login сверяет учетные данные администратора и выпускает сессионный токен
// с claim sub.
func (s *AuthService) Login(username, rawPassword string) (string, error) {
	const op = "services.admin.Login"
	if username != s.cfg.Username {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(s.cfg.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.maker.Issue(sessiontoken.Claims{"sub": username})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Refresh перевыпускает токен из уже валидного.
// Невалидный токен дает sessiontoken.ErrInvalidToken.
func (s *AuthService) Refresh(token string) (string, error) {
	const op = "services.admin.Refresh"
	refreshed, err := s.maker.Refresh(token)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return refreshed, nil
}
