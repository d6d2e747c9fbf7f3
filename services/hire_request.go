package services

import (
	"payroll-lab/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// HireRequest carries what is needed to build any employee variant.
// Language and TeamSize are not validated: unknown languages and negative teams are accepted.
type HireRequest struct {
	Kind       string  `validate:"required,oneof=developer manager"`
	Name       string  `validate:"required"`
	BaseSalary float64 `validate:"gte=0"`
	Language   string
	TeamSize   int
}

func ValidateHire(req HireRequest) error {
	return validate.Struct(req)
}

func (r HireRequest) payable() (domain.Payable, error) {
	if r.Kind == "manager" {
		manager, err := domain.NewManager(r.Name, r.BaseSalary, r.TeamSize)
		if err != nil {
			return nil, err
		}
		return manager, nil
	}
	dev, err := domain.NewDeveloper(r.Name, r.BaseSalary, r.Language)
	if err != nil {
		return nil, err
	}
	return dev, nil
}
