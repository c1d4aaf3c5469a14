package domain

import (
	"time"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// appointmentSlots фиксированная сетка слотов приёма.
// Утренний блок 09:00–12:00 и вечерний 15:00–18:00, шаг час.
var appointmentSlots = []types.TimeString{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
}

// AvailableSlots returns the ordered slot grid for the given reason.
// Сейчас сетка одинакова для всех причин визита; параметр оставлен,
// чтобы при необходимости завести расписание по направлениям.
func AvailableSlots(reason string) []types.TimeString {
	slots := make([]types.TimeString, len(appointmentSlots))
	copy(slots, appointmentSlots)
	return slots
}

// IsValidSlot returns true if slot belongs to the fixed grid
func IsValidSlot(slot types.TimeString) bool {
	for _, s := range appointmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsDateBookable returns true if the clinic takes appointments on that date.
// Приём только по будням, календаря праздников нет.
func IsDateBookable(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BookingHorizon returns the inclusive [minDate, maxDate] range of dates
// open for booking: from today through today + BookingHorizonDays
func BookingHorizon(now time.Time) (time.Time, time.Time) {
	minDate := truncateToDay(now)
	maxDate := minDate.AddDate(0, 0, BookingHorizonDays)
	return minDate, maxDate
}

// IsWithinHorizon returns true if date falls inside the booking horizon
func IsWithinHorizon(date, now time.Time) bool {
	minDate, maxDate := BookingHorizon(now)
	d := truncateToDay(date)
	return !d.Before(minDate) && !d.After(maxDate)
}

// truncateToDay обнуляет время, оставляя только календарную дату.
// Нормализует в UTC: дата заявки приходит как полночь UTC, а часы сервера
// могут идти в другой зоне, сравнивать моменты времени напрямую нельзя.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
