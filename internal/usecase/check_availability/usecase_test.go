package check_availability

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	findErr      error
}

func (f *fakeAppointmentRepo) FindActiveByDateSlot(_ context.Context, date time.Time, slot types.TimeString) (*domain.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.appointments {
		if a.AppointmentDate.Equal(date) && a.StartTime == slot && a.IsActive() {
			return a, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вторник 2025-06-10
var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_FreeSlotIsAvailable(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_TakenSlotIsUnavailable(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:              uuid.New(),
			AppointmentDate: date,
			StartTime:       "10:00",
			Status:          domain.StatusPending,
		}},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, StartTime: "10:00"})

	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:              uuid.New(),
			AppointmentDate: date,
			StartTime:       "10:00",
			Status:          domain.StatusCancelled,
		}},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, StartTime: "10:00"})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_UnavailableIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		slot types.TimeString
	}{
		{"weekend", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), "10:00"},
		{"past date", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), "10:00"},
		{"beyond horizon", time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), "10:00"},
		{"slot outside grid", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{})

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date, StartTime: tt.slot})

			require.NoError(t, err)
			assert.False(t, resp.Available)
		})
	}
}

func TestExecute_MissingParams(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "25:99",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoFailureIsInternal(t *testing.T) {
	repo := &fakeAppointmentRepo{findErr: fmt.Errorf("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
