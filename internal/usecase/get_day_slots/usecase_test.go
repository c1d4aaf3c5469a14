package get_day_slots

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	findErr      error
}

func (f *fakeAppointmentRepo) FindActiveByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.AppointmentDate.Equal(date) && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
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

func availableTimes(resp *Response) []types.TimeString {
	out := make([]types.TimeString, 0)
	for _, s := range resp.Slots {
		if s.Available {
			out = append(out, s.StartTime)
		}
	}
	return out
}

func TestExecute_EmptyDayAllSlotsAvailable(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[7].StartTime)
	assert.Len(t, availableTimes(resp), 8)
}

func TestExecute_TakenSlotsMarkedUnavailable(t *testing.T) {
	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: uuid.New(), AppointmentDate: date, StartTime: "10:00", Status: domain.StatusPending},
			{ID: uuid.New(), AppointmentDate: date, StartTime: "16:00", Status: domain.StatusConfirmed},
			{ID: uuid.New(), AppointmentDate: date, StartTime: "11:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)

	got := availableTimes(resp)
	// Заняты 10:00 (pending) и 16:00 (confirmed); отменённая 11:00 слот не держит
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "12:00", "15:00", "17:00", "18:00"}, got)
}

func TestExecute_NonBookableDateAllUnavailable(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"saturday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)},
		{"past date", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"beyond horizon", time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{})

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})

			require.NoError(t, err)
			require.Len(t, resp.Slots, 8, "сетка показывается целиком")
			assert.Empty(t, availableTimes(resp))
		})
	}
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoFailureIsInternal(t *testing.T) {
	repo := &fakeAppointmentRepo{findErr: fmt.Errorf("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
