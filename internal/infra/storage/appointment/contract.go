package appointment

import (
	"github.com/m04kA/CMG-AppointmentService/pkg/txmanager"
)

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx.
// Активная транзакция достаётся из контекста через txmanager.GetExecutor.
type DBExecutor = txmanager.DBExecutor
