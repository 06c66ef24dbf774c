package dataset

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/app/repository"
)

// Source yields validated case records.
type Source interface {
	Name() string
	Each(ctx context.Context, fn func(models.CaseRecord) error) error
}

// CSVSource reads a case CSV file from disk.
type CSVSource struct {
	Path string
}

func (s CSVSource) Name() string {
	return "csv:" + s.Path
}

func (s CSVSource) Each(ctx context.Context, fn func(models.CaseRecord) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, func(rec models.CaseRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(rec)
	})
}

// DBSource reads the case_records table.
type DBSource struct {
	Repo repository.CaseRecordRepository
}

func (s DBSource) Name() string {
	return "db:case_records"
}

func (s DBSource) Each(ctx context.Context, fn func(models.CaseRecord) error) error {
	return s.Repo.Each(ctx, func(rec models.CaseRecord) error {
		rec.Country = strings.TrimSpace(rec.Country)
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrMalformed, rec.ID, err)
		}
		return fn(rec)
	})
}
