package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Несуществующий email и неверный пароль неразличимы для клиента.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для просроченного или некорректного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
