package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DateLayout is the on-disk and on-wire date format of case records.
const DateLayout = "2006-01-02"

var ErrInconsistentCounts = errors.New("inconsistent case counts")

var validate = validator.New()

// CaseRecord is one (country, date) sample of cumulative case counters.
type CaseRecord struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Country   string    `gorm:"type:varchar(128);not null;index:idx_case_country_date,priority:1" json:"country" validate:"required,max=128"`
	Date      time.Time `gorm:"type:date;not null;index:idx_case_country_date,priority:2" json:"date" validate:"required"`
	Confirmed int64     `gorm:"not null;default:0" json:"confirmed" validate:"gte=0"`
	Deaths    int64     `gorm:"not null;default:0" json:"deaths" validate:"gte=0"`
	Recovered int64     `gorm:"not null;default:0" json:"recovered" validate:"gte=0"`
}

func (CaseRecord) TableName() string {
	return "case_records"
}

func (r *CaseRecord) Validate() error {
	return validate.Struct(r)
}

// CheckConsistency reports records where deaths or recovered exceed confirmed.
// Upstream data is not guaranteed to satisfy this, so callers decide whether it is fatal.
func (r *CaseRecord) CheckConsistency() error {
	if r.Deaths > r.Confirmed || r.Recovered > r.Confirmed {
		return fmt.Errorf("%w: %s %s confirmed=%d deaths=%d recovered=%d",
			ErrInconsistentCounts, r.Country, r.Date.Format(DateLayout), r.Confirmed, r.Deaths, r.Recovered)
	}
	return nil
}

func CountCaseRecords(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&CaseRecord{}).Count(&count).Error
	return count, err
}
