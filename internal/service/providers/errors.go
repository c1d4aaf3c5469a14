package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда страховая не найдена
	ErrProviderNotFound = errors.New("insurance provider not found")

	// ErrProviderExists возвращается при попытке создать дубликат по названию
	ErrProviderExists = errors.New("insurance provider already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
