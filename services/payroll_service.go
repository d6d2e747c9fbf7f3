package services

import (
	"fmt"
	"log/slog"
	"payroll-lab/domain"
	"payroll-lab/errors"
	"payroll-lab/repositories"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IPayrollService interface {
	Hire(req HireRequest) (uuid.UUID, error)
	Raise(id uuid.UUID, salary float64) error
	Payroll() (Report, error)
}

type PayrollService struct {
	employeeRepository repositories.IEmployeeRepository
	log                *slog.Logger
}

// Report is the payroll computed from every stored employee.
type Report struct {
	Lines []domain.Line
	Total float64
}

func NewPayrollService(repo repositories.IEmployeeRepository, log *slog.Logger) IPayrollService {
	return &PayrollService{employeeRepository: repo, log: log}
}

func (s *PayrollService) Hire(req HireRequest) (uuid.UUID, error) {
	if err := ValidateHire(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errors.ErrInvalidHireRequest, err)
	}
	payable, err := req.payable()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	if err = s.employeeRepository.StoreEmployee(repositories.FromPayable(id, time.Now(), payable)); err != nil {
		return uuid.Nil, fmt.Errorf("storing %s failed: %w", req.Name, err)
	}
	s.log.Info("Employee hired", "id", id, "kind", payable.Kind(), "name", payable.FullName())
	return id, nil
}

// Raise goes through domain.Employee.SetSalary so a negative salary never reaches storage.
func (s *PayrollService) Raise(id uuid.UUID, salary float64) error {
	stored, err := s.employeeRepository.GetEmployee(id)
	if err != nil {
		return err
	}
	payable, err := repositories.ToPayable(stored)
	if err != nil {
		return err
	}
	if err = payable.SetSalary(salary); err != nil {
		return err
	}
	if err = s.employeeRepository.UpdateSalary(id, payable.Salary()); err != nil {
		return fmt.Errorf("salary update failed: %w", err)
	}
	s.log.Debug("Salary updated", "id", id, "salary", salary)
	return nil
}

func (s *PayrollService) Payroll() (Report, error) {
	stored, err := s.employeeRepository.GetEmployees()
	if err != nil {
		return Report{}, err
	}
	employees := make([]domain.Payable, 0, len(stored))
	for _, e := range stored {
		payable, err := repositories.ToPayable(e)
		if err != nil {
			return Report{}, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		employees = append(employees, payable)
	}
	report := Report{
		Lines: domain.Breakdown(employees),
		Total: domain.TotalPayroll(employees),
	}
	s.log.Debug("Payroll computed", "employees", len(employees), "total", report.Total,
		"managers", lo.CountBy(employees, func(p domain.Payable) bool { return p.Kind() == domain.KindManager }))
	return report, nil
}
