package check_availability

import (
	"time"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Date      time.Time        // Дата приёма
	StartTime types.TimeString // Слот ("10:00")
}

// Response результат проверки.
// Ответ справочный: к моменту отправки формы слот может быть уже занят,
// окончательная проверка выполняется при создании записи.
type Response struct {
	Available bool
}
