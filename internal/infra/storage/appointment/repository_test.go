package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

func newTestAppointment() *domain.Appointment {
	return &domain.Appointment{
		FirstName:         "Juan",
		LastName:          "Perez",
		Phone:             "1155551234",
		Email:             "juan@x.com",
		InsuranceProvider: "OSDE",
		Reason:            "Artroscopía",
		AppointmentDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:         "10:00",
		Status:            domain.StatusPending,
		RequestedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewRepository(db)
	created, err := repo.Create(context.Background(), newTestAppointment())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapsToSlotTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Нарушение partial unique index по (appointment_date, start_time)
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uniq_active_appointment_slot"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), newTestAppointment())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SerializationFailureStaysUnwrappable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Конфликт сериализации при вставке: txmanager должен увидеть код 40001
	// через errors.As и повторить транзакцию
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "40001"})

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), newTestAppointment())

	require.ErrorIs(t, err, ErrExecQuery)
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByDateSlot_SerializationFailureStaysUnwrappable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnError(&pq.Error{Code: "40001"})

	repo := NewRepository(db)
	_, err = repo.FindActiveByDateSlot(context.Background(),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")

	require.ErrorIs(t, err, ErrScanRow)
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery("SELECT .+ FROM appointments").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	repo := NewRepository(db)
	_, err = repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByDateSlot_Free(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	repo := NewRepository(db)
	_, err = repo.FindActiveByDateSlot(context.Background(),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")

	// Свободный слот — это NotFound, а не ошибка выполнения
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByDateSlot_Occupied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(appointmentColumns).AddRow(
		id, "Juan", "Perez", "1155551234", "juan@x.com", "OSDE", "Artroscopía",
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00", "confirmed",
		now, now, now,
	)
	mock.ExpectQuery("SELECT .+ FROM appointments").WillReturnRows(rows)

	repo := NewRepository(db)
	appt, err := repo.FindActiveByDateSlot(context.Background(),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")

	require.NoError(t, err)
	assert.Equal(t, id, appt.ID)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusConfirmed)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	err = repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_OrdersByRequestedAtDesc(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(uuid.New(), "Ana", "Gomez", "1144440000", "ana@x.com", "PAMI", "Rehabilitación",
			time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "09:00", "pending", now, now, now).
		AddRow(uuid.New(), "Juan", "Perez", "1155551234", "juan@x.com", "OSDE", "Artroscopía",
			time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00", "confirmed", now.Add(-time.Hour), now, now)

	mock.ExpectQuery("SELECT .+ FROM appointments ORDER BY requested_at DESC").
		WillReturnRows(rows)

	repo := NewRepository(db)
	appointments, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Ana", appointments[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
