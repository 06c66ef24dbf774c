package repository

import (
	"context"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"gorm.io/gorm"
)

// CaseRecordRepository defines the database operations on case records
type CaseRecordRepository interface {
	// Each streams every record ordered by country then date.
	Each(ctx context.Context, fn func(models.CaseRecord) error) error
	CreateInBatches(ctx context.Context, records []models.CaseRecord, batchSize int) error
	Count(ctx context.Context) (int64, error)
	Truncate(ctx context.Context) error
}

// Repositories bundles all repositories
type Repositories struct {
	CaseRecord CaseRecordRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		CaseRecord: NewCaseRecordRepository(db),
	}
}
