package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"payroll-lab/domain"
	"payroll-lab/repositories"
	"payroll-lab/services"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	os.Exit(exitCode(run(), os.Stderr))
}

// exitCode reports a fatal error on stderr and maps it to exit status 1.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "Fatal error: %v\n", err)
	return 1
}

// run keeps every defer (database close) ahead of os.Exit.
func run() error {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	employees, err := demo(os.Stdout, config.Colours)
	if err != nil {
		return err
	}

	if config.BadgerFilepath == "" {
		return nil
	}
	return persist(log, config.BadgerFilepath, employees)
}

// demo builds the sample roster, prints each employee, raises Luis and prints the total.
func demo(out io.Writer, colours bool) ([]domain.Payable, error) {
	ana, err := domain.NewDeveloper("Ana", 1200, "Python")
	if err != nil {
		return nil, err
	}
	luis, err := domain.NewDeveloper("Luis", 1000, "JavaScript")
	if err != nil {
		return nil, err
	}
	maria, err := domain.NewManager("María", 2000, 5)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, ana)
	fmt.Fprintln(out, luis)
	fmt.Fprintln(out, maria)

	if err = luis.SetSalary(1100); err != nil {
		return nil, err
	}

	employees := []domain.Payable{ana, luis, maria}
	total := fmt.Sprintf("TOTAL NÓMINA: $%s", domain.FormatAmount(domain.TotalPayroll(employees)))
	if colours {
		total = color.New(color.OpBold, color.FgGreen).Render(total)
	}
	fmt.Fprintln(out, total)
	return employees, nil
}

func persist(log *slog.Logger, path string, employees []domain.Payable) error {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	repository := repositories.NewEmployeeRepository(db, log)
	for _, p := range employees {
		if err = repository.StoreEmployee(repositories.FromPayable(uuid.New(), time.Now(), p)); err != nil {
			return fmt.Errorf("storing %s failed: %w", p.FullName(), err)
		}
	}

	report, err := services.NewPayrollService(repository, log).Payroll()
	if err != nil {
		return err
	}
	log.Info("Payroll persisted", "path", path, "employees", len(report.Lines), "total", domain.FormatAmount(report.Total))
	return nil
}
