package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствующие обязательные поля перечисляются в тексте ошибки,
// чтобы форма могла показать их пациенту.
func validateRequest(req *Request) error {
	missing := make([]string, 0)

	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.InsuranceProvider) == "" {
		missing = append(missing, "insuranceProvider")
	}
	if strings.TrimSpace(req.Reason) == "" {
		missing = append(missing, "reason")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if req.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	// Причина визита — из фиксированного каталога услуг.
	// Название страховой при этом свободный текст: форма подставляет его
	// из справочника, сервер требует только непустое значение.
	if !domain.IsValidReason(req.Reason) {
		return fmt.Errorf("%w: %q", ErrInvalidReason, req.Reason)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if !domain.IsValidSlot(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	return nil
}

// validateDate проверяет, что дата попадает в горизонт записи и на рабочий день
func validateDate(date, now time.Time) error {
	minDate, _ := domain.BookingHorizon(now)

	// Сравниваем календарные даты в UTC, как и domain.BookingHorizon
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(minDate) {
		return ErrInvalidDate
	}

	if !domain.IsWithinHorizon(date, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.BookingHorizonDays)
	}

	if !domain.IsDateBookable(date) {
		return ErrDateNotBookable
	}

	return nil
}
