package domain

import "strings"

const premiumBonusRate = 0.15

var premiumLanguages = map[string]struct{}{
	"python": {},
	"rust":   {},
}

var _ Payable = (*Developer)(nil)

type Developer struct {
	Employee
	Language string
}

func NewDeveloper(name string, baseSalary float64, language string) (*Developer, error) {
	employee, err := NewEmployee(name, baseSalary)
	if err != nil {
		return nil, err
	}
	return &Developer{Employee: employee, Language: language}, nil
}

// IsPremiumLanguage matches case-insensitively against python and rust.
func IsPremiumLanguage(language string) bool {
	_, ok := premiumLanguages[strings.ToLower(language)]
	return ok
}

func (d *Developer) Kind() Kind {
	return KindDeveloper
}

// ComputeSalary adds a 15% bonus on the current salary for premium languages.
func (d *Developer) ComputeSalary() float64 {
	var bonus float64
	if IsPremiumLanguage(d.Language) {
		bonus = premiumBonusRate * d.salary
	}
	return d.salary + bonus
}

func (d *Developer) String() string {
	return Describe(d)
}
