package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих или некорректных полях.
	// Детали (список полей) добавляются обёрткой через fmt.Errorf.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается для даты за пределами горизонта записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is beyond the booking horizon")

	// ErrDateNotBookable возвращается для выходного дня (суббота/воскресенье)
	ErrDateNotBookable = errors.New("create_appointment: clinic does not take appointments on this date")

	// ErrInvalidTimeSlot возвращается для слота вне фиксированной сетки
	ErrInvalidTimeSlot = errors.New("create_appointment: time slot is not in the schedule grid")

	// ErrInvalidReason возвращается для причины визита вне каталога услуг
	ErrInvalidReason = errors.New("create_appointment: unknown visit reason")

	// ErrSlotNotAvailable возвращается, когда слот занят активной записью.
	// Это штатный ответ гонки двух пациентов за один слот, не сбой.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
