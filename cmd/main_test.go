package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"payroll-lab/repositories"
	"payroll-lab/services"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDemo_Output(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	employees, err := demo(&out, false)
	req.NoError(err)
	req.Len(employees, 3)
	req.Equal(
		"Developer(Ana, $1,380.00)\n"+
			"Developer(Luis, $1,000.00)\n"+
			"Manager(María, $3,000.00)\n"+
			"TOTAL NÓMINA: $5,480.00\n",
		out.String(),
	)
}

func TestPersist_Twice_Accumulates(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	employees, err := demo(&out, false)
	req.NoError(err)

	path := filepath.Join(t.TempDir(), "payroll")
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	req.NoError(persist(log, path, employees))
	req.NoError(persist(log, path, employees))

	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	report, err := services.NewPayrollService(repositories.NewEmployeeRepository(db, log), log).Payroll()
	req.NoError(err)
	req.Len(report.Lines, 6)
	req.Equal(2*5480.0, report.Total)
}

func TestRun_Persists_Roster_From_Env(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "payroll")
	t.Setenv("BADGER_FILEPATH", path)
	t.Setenv("LOG_LEVEL", "INFO")

	req.NoError(run())

	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	stored, err := repositories.NewEmployeeRepository(db, slog.Default()).GetEmployees()
	req.NoError(err)
	req.Len(stored, 3)
}

func TestRun_Database_Error_Exits_With_One(t *testing.T) {
	req := require.New(t)
	// A regular file cannot hold a Badger directory
	path := filepath.Join(t.TempDir(), "not-a-dir")
	req.NoError(os.WriteFile(path, []byte("x"), 0o600))
	t.Setenv("BADGER_FILEPATH", path)
	t.Setenv("LOG_LEVEL", "INFO")

	err := run()
	req.Error(err)
	req.ErrorContains(err, "database opening failed")

	var stderr bytes.Buffer
	req.Equal(1, exitCode(err, &stderr))
	req.Contains(stderr.String(), "Fatal error: database opening failed")
}

func TestExitCode_Success(t *testing.T) {
	req := require.New(t)
	var stderr bytes.Buffer
	req.Equal(0, exitCode(nil, &stderr))
	req.Empty(stderr.String())
}
