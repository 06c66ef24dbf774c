package repository

import (
	"context"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"gorm.io/gorm"
)

// caseRecordRepository implements the CaseRecordRepository interface
type caseRecordRepository struct {
	db *gorm.DB
}

// NewCaseRecordRepository creates a new case record repository instance
func NewCaseRecordRepository(db *gorm.DB) CaseRecordRepository {
	return &caseRecordRepository{db: db}
}

// Each streams rows through a cursor so large datasets are never fully buffered
func (r *caseRecordRepository) Each(ctx context.Context, fn func(models.CaseRecord) error) error {
	db := r.db.WithContext(ctx)
	rows, err := db.Model(&models.CaseRecord{}).
		Order("country ASC").Order("date ASC").Order("id ASC").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.CaseRecord
		if err := db.ScanRows(rows, &rec); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CreateInBatches inserts records batchSize rows at a time
func (r *caseRecordRepository) CreateInBatches(ctx context.Context, records []models.CaseRecord, batchSize int) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, batchSize).Error
}

// Count returns the number of stored records
func (r *caseRecordRepository) Count(ctx context.Context) (int64, error) {
	return models.CountCaseRecords(r.db.WithContext(ctx))
}

// Truncate removes all records
func (r *caseRecordRepository) Truncate(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CaseRecord{}).Error
}
