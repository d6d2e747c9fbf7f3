package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"payroll-lab/domain"
	"payroll-lab/repositories"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	DBPath string `envconfig:"PAYROLL_DB" default:"./payroll-db"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbPath := flag.String("db", config.DBPath, "Path to badger DB")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewEmployeeRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
	stored, err := repository.GetEmployees()
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Kind", "Name", "Detail", "Base", "Computed"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	employees := make([]domain.Payable, 0, len(stored))
	for _, e := range stored {
		p, err := repositories.ToPayable(e)
		if err != nil {
			// Skip broken rows instead of stopping the whole listing
			fmt.Printf("Skipping %s: %v\n", e.ID, err)
			continue
		}
		employees = append(employees, p)
		table.Append([]string{
			e.ID.String()[:8],
			string(e.Kind),
			e.Name,
			detail(e),
			domain.FormatAmount(p.Salary()),
			domain.FormatAmount(p.ComputeSalary()),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Total", domain.FormatAmount(domain.TotalPayroll(employees))})
	table.Render()
}

func detail(e repositories.DiskEmployee) string {
	if e.Kind == domain.KindManager {
		return "team of " + strconv.Itoa(e.TeamSize)
	}
	return e.Language
}
