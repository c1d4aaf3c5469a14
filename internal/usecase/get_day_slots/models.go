package get_day_slots

import (
	"time"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// Request модель запроса сетки слотов на день
type Request struct {
	Date time.Time // Дата приёма
}

// Slot один слот сетки с признаком доступности
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// Response сетка слотов на день в порядке расписания
type Response struct {
	Date  time.Time
	Slots []Slot
}
