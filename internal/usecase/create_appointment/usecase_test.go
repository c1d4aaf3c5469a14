package create_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// fakeAppointmentRepo in-memory репозиторий для тестов
type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = uuid.New()
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) FindActiveByDateSlot(_ context.Context, date time.Time, slot types.TimeString) (*domain.Appointment, error) {
	for _, a := range f.appointments {
		if a.AppointmentDate.Equal(date) && a.StartTime == slot && a.IsActive() {
			return a, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider фиксированное "сейчас" для тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вторник 2025-06-10, 09:00 — все тесты отсчитывают горизонт от этой даты
var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		FirstName:         "Juan",
		LastName:          "Perez",
		Phone:             "1155551234",
		Email:             "juan@x.com",
		InsuranceProvider: "OSDE",
		Reason:            "Artroscopía",
		Date:              time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), // вторник
		StartTime:         "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, testNow, resp.RequestedAt)
	require.Len(t, repo.appointments, 1)
}

func TestExecute_SlotOccupied(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй пациент на тот же (дата, слот)
	second := validRequest()
	second.FirstName = "Ana"
	second.Email = "ana@x.com"

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, repo.appointments, 1, "проигравший запрос не создаёт запись")
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:              uuid.New(),
			AppointmentDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			Status:          domain.StatusCancelled,
		}},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_ConcurrentUniqueViolation(t *testing.T) {
	// Проверка доступности прошла, но конкурентная вставка успела раньше:
	// unique index срабатывает, пациент получает тот же конфликт слота
	repo := &fakeAppointmentRepo{createErr: apptRepo.ErrSlotTaken}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_MissingFieldsListed(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	req := validRequest()
	req.Phone = ""
	req.Email = "  "

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "phone")
	assert.Contains(t, err.Error(), "email")
}

func TestExecute_WeekendRejected(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	for _, date := range []time.Time{
		time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), // суббота
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), // воскресенье
	} {
		req := validRequest()
		req.Date = date

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateNotBookable, date.Weekday().String())
	}
}

func TestExecute_HorizonBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"today accepted", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), nil},
		{"today+14 accepted", time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC), nil},
		{"today+15 rejected", time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), ErrDateTooFarInFuture},
		{"yesterday rejected", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{})
			req := validRequest()
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExecute_ServerClockInOtherZone(t *testing.T) {
	// Дата из формы приходит как полночь UTC; часы сервера идут в зоне
	// клиники (UTC-3). Запись на сегодня и на today+14 должна проходить.
	art := time.FixedZone("-03", -3*60*60)

	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 10, 9, 0, 0, 0, art)}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "запись на сегодня при отрицательном смещении")
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	last := validRequest()
	last.Date = time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC) // today+14, вторник

	_, err = uc.Execute(context.Background(), last)
	assert.NoError(t, err, "запись на последний день горизонта")
}

func TestExecute_UnknownReason(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	req := validRequest()
	req.Reason = "Consulta general"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidReason)
}

func TestExecute_SlotOutsideGrid(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	req := validRequest()
	req.StartTime = "13:00" // обеденный перерыв, слота нет

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RepoFailureIsInternal(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: fmt.Errorf("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
