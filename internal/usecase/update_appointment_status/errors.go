package update_appointment_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, если запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment_status: appointment not found")

	// ErrInvalidStatus возвращается для неизвестного целевого статуса
	ErrInvalidStatus = errors.New("update_appointment_status: invalid status")

	// ErrInvalidTransition возвращается для недопустимого перехода статуса.
	// Отменённая запись — терминальное состояние, повторный перевод
	// в текущий статус тоже отклоняется.
	ErrInvalidTransition = errors.New("update_appointment_status: status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment_status: internal error")
)
