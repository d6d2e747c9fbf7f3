//go:generate go run go.uber.org/mock/mockgen -source=employee.go -destination=../mocks/mock_employee_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"payroll-lab/domain"
	"payroll-lab/errors"
	"time"

	errs "errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	employeePrefix = "employee:"
	indexPrefix    = "idx:employee:"
)

type IEmployeeRepository interface {
	StoreEmployee(employee DiskEmployee) error
	GetEmployees() ([]DiskEmployee, error)
	GetEmployee(id uuid.UUID) (DiskEmployee, error)
	UpdateSalary(id uuid.UUID, salary float64) error
}

type EmployeeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEmployeeRepository(db *badger.DB, log *slog.Logger) EmployeeRepository {
	return EmployeeRepository{db: db, log: log}
}

// DiskEmployee is the flat stored form of any domain.Payable.
// Language is only set for developers, TeamSize only for managers.
type DiskEmployee struct {
	ID       uuid.UUID
	Kind     domain.Kind
	Name     string
	Salary   float64
	Language string
	TeamSize int
	At       time.Time
}

// StoreEmployee persists an employee under "employee:{timestamp_padded}:{uuid}"
// so a prefix scan returns employees in hiring order.
// A secondary index "idx:employee:{uuid}" points back to the primary key.
func (e EmployeeRepository) StoreEmployee(employee DiskEmployee) error {
	key := primaryKey(employee)
	bytes, err := marshalEmployee(employee)
	if err != nil {
		return err
	}
	return e.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(indexPrefix+employee.ID.String()), []byte(key))
	})
}

func (e EmployeeRepository) GetEmployees() ([]DiskEmployee, error) {
	var employees []DiskEmployee
	err := e.db.View(func(txn *badger.Txn) error {
		prefix := []byte(employeePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				employee, err := unmarshalEmployee(v)
				if err != nil {
					return err
				}
				employees = append(employees, employee)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during employees fetch: %w", err)
	}
	e.log.Debug(fmt.Sprintf("%d employees loaded", len(employees)))
	return employees, nil
}

func (e EmployeeRepository) GetEmployee(id uuid.UUID) (DiskEmployee, error) {
	var employee DiskEmployee
	err := e.db.View(func(txn *badger.Txn) error {
		item, err := get(txn, id)
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			employee, err = unmarshalEmployee(v)
			return err
		})
	})
	return employee, err
}

// UpdateSalary overwrites the stored salary in place, the primary key is unchanged.
// Negative salaries are refused like domain.Employee.SetSalary does.
func (e EmployeeRepository) UpdateSalary(id uuid.UUID, salary float64) error {
	if salary < 0 {
		return fmt.Errorf("%w: got %.2f for %s", errors.ErrInvalidSalary, salary, id)
	}
	return e.db.Update(func(txn *badger.Txn) error {
		item, err := get(txn, id)
		if err != nil {
			return err
		}
		var employee DiskEmployee
		err = item.Value(func(v []byte) error {
			employee, err = unmarshalEmployee(v)
			return err
		})
		if err != nil {
			return err
		}
		employee.Salary = salary
		bytes, err := marshalEmployee(employee)
		if err != nil {
			return err
		}
		return txn.Set(item.KeyCopy(nil), bytes)
	})
}

// get resolves the secondary index and returns the primary item.
func get(txn *badger.Txn, id uuid.UUID) (*badger.Item, error) {
	idx, err := txn.Get([]byte(indexPrefix + id.String()))
	if errs.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errors.ErrEmployeeNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	key, err := idx.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	item, err := txn.Get(key)
	if errs.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: dangling index for %s", errors.ErrEmployeeNotFound, id)
	}
	return item, err
}

func primaryKey(employee DiskEmployee) string {
	return fmt.Sprintf("%s%019d:%s", employeePrefix, employee.At.UnixNano(), employee.ID)
}

func marshalEmployee(employee DiskEmployee) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":         employee.ID.String(),
		"kind":       string(employee.Kind),
		"name":       employee.Name,
		"salary":     employee.Salary,
		"language":   employee.Language,
		"team_size":  employee.TeamSize,
		"created_at": employee.At.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build employee struct: %w", err)
	}
	return proto.Marshal(s)
}

func unmarshalEmployee(v []byte) (DiskEmployee, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(v, &s); err != nil {
		return DiskEmployee{}, fmt.Errorf("failed to unmarshal employee: %w", err)
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return DiskEmployee{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return DiskEmployee{}, err
	}
	return DiskEmployee{
		ID:       id,
		Kind:     domain.Kind(fields["kind"].GetStringValue()),
		Name:     fields["name"].GetStringValue(),
		Salary:   fields["salary"].GetNumberValue(),
		Language: fields["language"].GetStringValue(),
		TeamSize: int(fields["team_size"].GetNumberValue()),
		At:       at.UTC(),
	}, nil
}
