package domain

const bonusPerReport = 200

var _ Payable = (*Manager)(nil)

type Manager struct {
	Employee
	TeamSize int
}

// NewManager keeps teamSize as given, negative values included.
func NewManager(name string, baseSalary float64, teamSize int) (*Manager, error) {
	employee, err := NewEmployee(name, baseSalary)
	if err != nil {
		return nil, err
	}
	return &Manager{Employee: employee, TeamSize: teamSize}, nil
}

func (m *Manager) Kind() Kind {
	return KindManager
}

func (m *Manager) ComputeSalary() float64 {
	return m.salary + float64(bonusPerReport*m.TeamSize)
}

func (m *Manager) String() string {
	return Describe(m)
}
