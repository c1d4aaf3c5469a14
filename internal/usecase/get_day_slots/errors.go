package get_day_slots

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующей или некорректной дате
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
