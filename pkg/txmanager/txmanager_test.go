package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serializationFailure ошибка сериализации в том виде, в каком её
// возвращают репозитории: sentinel пакета + ошибка драйвера через %w
func serializationFailure() error {
	errExec := errors.New("storage: failed to execute query")
	return fmt.Errorf("%w: Create - execute insert: %w", errExec, &pq.Error{Code: "40001"})
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Первая попытка ловит конфликт сериализации, вторая проходит
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < maxSerializableRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	m := NewTransactionManager(db)
	calls := 0
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return serializationFailure()
	})

	require.Error(t, err)
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.Equal(t, maxSerializableRetries, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTransactionManager(db)
	calls := 0
	businessErr := errors.New("slot is taken")
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return businessErr
	})

	assert.ErrorIs(t, err, businessErr)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
