package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда оператор не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists возвращается при попытке создать дубликат по email
	ErrEmailExists = errors.New("user with this email already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrLastAdmin возвращается при попытке удалить последнего администратора
	ErrLastAdmin = errors.New("cannot delete the last admin")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
