package mailer

import "errors"

var (
	// ErrDeliveryFailed возвращается, когда письмо не удалось отправить.
	// Вызывающая сторона (usecase update_appointment_status) логирует и гасит её:
	// смена статуса записи — факт, доставка письма — best-effort.
	ErrDeliveryFailed = errors.New("mailer client: delivery failed")
)
