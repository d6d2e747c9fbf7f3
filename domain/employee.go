// Package domain contains core concepts of the payroll.
// This file defines the Employee base record and the Payable capability.
// No storage, network, or console logic should be added here.
package domain

import (
	"fmt"
	"math/big"
	"payroll-lab/errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

type Kind string

const (
	KindDeveloper Kind = "Developer"
	KindManager   Kind = "Manager"
)

// Payable is what every employee variant must offer to be paid.
// Employee alone does not implement ComputeSalary, so it cannot be used as a Payable.
type Payable interface {
	Kind() Kind
	FullName() string
	Salary() float64
	SetSalary(value float64) error
	ComputeSalary() float64
}

// Employee is the record shared by every variant.
// salary is only written through SetSalary to keep it non-negative.
type Employee struct {
	Name   string
	salary float64
}

func NewEmployee(name string, baseSalary float64) (Employee, error) {
	if baseSalary < 0 {
		return Employee{}, fmt.Errorf("%w: got %.2f for %s", errors.ErrInvalidSalary, baseSalary, name)
	}
	return Employee{Name: name, salary: baseSalary}, nil
}

func (e *Employee) FullName() string {
	return e.Name
}

func (e *Employee) Salary() float64 {
	return e.salary
}

// SetSalary rejects negative values and leaves the previous salary untouched.
func (e *Employee) SetSalary(value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: got %.2f for %s", errors.ErrInvalidSalary, value, e.Name)
	}
	e.salary = value
	return nil
}

// Describe renders any Payable as "Kind(name, $1,234.56)".
func Describe(p Payable) string {
	return fmt.Sprintf("%s(%s, $%s)", p.Kind(), p.FullName(), FormatAmount(p.ComputeSalary()))
}

// FormatAmount uses comma thousands separators and two decimals.
// Rounding is done by strconv on the exact binary value, grouping on a big.Int
// so amounts above math.MaxInt64 keep their digits.
func FormatAmount(value float64) string {
	digits := strconv.FormatFloat(value, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	whole, fraction, _ := strings.Cut(digits, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		// NaN and infinities
		return sign + digits
	}
	return sign + humanize.BigComma(n) + "." + fraction
}
