package repositories

import (
	"fmt"
	"payroll-lab/domain"
	"payroll-lab/errors"
	"time"

	"github.com/google/uuid"
)

// ToPayable rebuilds the domain variant matching the stored kind.
func ToPayable(employee DiskEmployee) (domain.Payable, error) {
	switch employee.Kind {
	case domain.KindDeveloper:
		dev, err := domain.NewDeveloper(employee.Name, employee.Salary, employee.Language)
		if err != nil {
			return nil, err
		}
		return dev, nil
	case domain.KindManager:
		manager, err := domain.NewManager(employee.Name, employee.Salary, employee.TeamSize)
		if err != nil {
			return nil, err
		}
		return manager, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownKind, employee.Kind)
	}
}

func FromPayable(id uuid.UUID, at time.Time, p domain.Payable) DiskEmployee {
	employee := DiskEmployee{
		ID:     id,
		Kind:   p.Kind(),
		Name:   p.FullName(),
		Salary: p.Salary(),
		At:     at.UTC(),
	}
	switch v := p.(type) {
	case *domain.Developer:
		employee.Language = v.Language
	case *domain.Manager:
		employee.TeamSize = v.TeamSize
	}
	return employee
}
