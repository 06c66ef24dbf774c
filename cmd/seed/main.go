package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/app/repository"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/database"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
)

const batchSize = 500

var errUsage = errors.New("usage")

func main() {
	env.SetupEnvFile()

	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	log.Printf("Connecting to database (driver %s)", env.GetEnv("DB_DRIVER", "mysql"))
	if err := database.SetupDatabase(); err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	repo := repository.NewFactory(database.GetDB()).GetCaseRecordRepository()
	if err := run(context.Background(), repo, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stdout)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, repo repository.CaseRecordRepository, args []string, out io.Writer) error {
	switch args[0] {
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("%w: import needs a csv path", errUsage)
		}
		n, err := importCSV(ctx, repo, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %d records from %s\n", n, args[1])

	case "count":
		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count case records: %w", err)
		}
		fmt.Fprintf(out, "%d case records\n", n)

	case "truncate":
		if err := repo.Truncate(ctx); err != nil {
			return fmt.Errorf("truncate case records: %w", err)
		}
		fmt.Fprintln(out, "Removed all case records")

	default:
		return errUsage
	}
	return nil
}

// importCSV validates the whole file before writing anything
func importCSV(ctx context.Context, repo repository.CaseRecordRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []models.CaseRecord
	err = dataset.ReadCSV(f, func(rec models.CaseRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := repo.CreateInBatches(ctx, records, batchSize); err != nil {
		return 0, fmt.Errorf("store case records: %w", err)
	}
	return len(records), nil
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: go run cmd/seed/main.go [command]")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  import <csv> - Load a case CSV into case_records")
	fmt.Fprintln(out, "  count        - Show the number of stored case records")
	fmt.Fprintln(out, "  truncate     - Remove all case records")
}
