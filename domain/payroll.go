package domain

import "github.com/samber/lo"

type Line struct {
	Kind   Kind
	Name   string
	Amount float64
}

// TotalPayroll sums ComputeSalary over employees in order. Empty input gives 0.
func TotalPayroll(employees []Payable) float64 {
	return lo.SumBy(employees, func(p Payable) float64 {
		return p.ComputeSalary()
	})
}

func Breakdown(employees []Payable) []Line {
	return lo.Map(employees, func(p Payable, _ int) Line {
		return Line{Kind: p.Kind(), Name: p.FullName(), Amount: p.ComputeSalary()}
	})
}
