package repositories

import (
	"log/slog"
	"payroll-lab/domain"
	"payroll-lab/errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func Test_Store_And_Get_Employees_In_Hiring_Order(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repository := NewEmployeeRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	at := time.Now().UTC()
	employees := []DiskEmployee{
		{uuid.New(), domain.KindManager, "María", 2000, "", 5, at.Add(2 * time.Minute)},
		{uuid.New(), domain.KindDeveloper, "Ana", 1200, "Python", 0, at},
		{uuid.New(), domain.KindDeveloper, "Luis", 1000, "JavaScript", 0, at.Add(1 * time.Minute)},
	}
	for _, e := range employees {
		req.NoError(repository.StoreEmployee(e))
	}

	fetched, err := repository.GetEmployees()
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal([]DiskEmployee{employees[1], employees[2], employees[0]}, fetched)
}

func Test_GetEmployees_Empty(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repository := NewEmployeeRepository(db, slog.Default())
	fetched, err := repository.GetEmployees()
	req.NoError(err)
	req.Empty(fetched)
}

func Test_UpdateSalary(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repository := NewEmployeeRepository(db, slog.Default())
	luis := DiskEmployee{ID: uuid.New(), Kind: domain.KindDeveloper, Name: "Luis", Salary: 1000, Language: "JavaScript", At: time.Now().UTC()}
	req.NoError(repository.StoreEmployee(luis))

	req.NoError(repository.UpdateSalary(luis.ID, 1100))

	fetched, err := repository.GetEmployee(luis.ID)
	req.NoError(err)
	req.Equal(1100.0, fetched.Salary)
	req.Equal(luis.At, fetched.At)

	all, err := repository.GetEmployees()
	req.NoError(err)
	req.Len(all, 1)
}

func Test_UpdateSalary_Rejects_Negative(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repository := NewEmployeeRepository(db, slog.Default())
	ana := DiskEmployee{ID: uuid.New(), Kind: domain.KindDeveloper, Name: "Ana", Salary: 1200, Language: "Python", At: time.Now().UTC()}
	req.NoError(repository.StoreEmployee(ana))

	err := repository.UpdateSalary(ana.ID, -1)
	req.ErrorIs(err, errors.ErrInvalidSalary)

	// Then the stored salary is untouched
	fetched, err := repository.GetEmployee(ana.ID)
	req.NoError(err)
	req.Equal(1200.0, fetched.Salary)
}

func Test_Unknown_Employee(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	repository := NewEmployeeRepository(db, slog.Default())
	_, err := repository.GetEmployee(uuid.New())
	req.ErrorIs(err, errors.ErrEmployeeNotFound)

	err = repository.UpdateSalary(uuid.New(), 10)
	req.ErrorIs(err, errors.ErrEmployeeNotFound)
}

func Test_ToPayable_And_Back(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()
	maria := DiskEmployee{ID: uuid.New(), Kind: domain.KindManager, Name: "María", Salary: 2000, TeamSize: 5, At: at}

	payable, err := ToPayable(maria)
	req.NoError(err)
	req.Equal(domain.KindManager, payable.Kind())
	req.Equal(3000.0, payable.ComputeSalary())
	req.Equal(maria, FromPayable(maria.ID, at, payable))

	_, err = ToPayable(DiskEmployee{Kind: "Intern"})
	req.ErrorIs(err, errors.ErrUnknownKind)
}
