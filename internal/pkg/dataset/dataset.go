// Package dataset loads case records once and exposes the read-only views the
// dashboard is built from: latest snapshot per country, global totals, the
// country catalog and the full per-country time series.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/CoronaDash/app/models"
)

var (
	ErrMalformed = errors.New("malformed dataset")
	ErrEmpty     = errors.New("empty dataset")
)

type Options struct {
	// Strict rejects records whose deaths or recovered exceed confirmed.
	Strict bool
}

// Dataset is immutable after Load and safe to share between goroutines.
type Dataset struct {
	source   string
	loadedAt time.Time
	store    *ColumnStore
	index    map[string]int32
	snapshot []CountrySnapshot
	totals   GlobalTotals
	catalog  []string
}

func Load(ctx context.Context, src Source, opts Options) (*Dataset, error) {
	start := time.Now()
	b := newStoreBuilder()
	inconsistent := 0

	err := src.Each(ctx, func(rec models.CaseRecord) error {
		if err := rec.CheckConsistency(); err != nil {
			if opts.Strict {
				return fmt.Errorf("%w: %w", ErrMalformed, err)
			}
			inconsistent++
		}
		b.add(rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	if len(b.store.Dates) == 0 {
		return nil, fmt.Errorf("load %s: %w", src.Name(), ErrEmpty)
	}

	ds := newDataset(b.build())
	ds.source = src.Name()
	ds.loadedAt = time.Now()

	if inconsistent > 0 {
		log.Warnf("Dataset %s: %d records report deaths or recovered above confirmed", src.Name(), inconsistent)
	}
	log.Infof("Dataset %s loaded. Rows: %d (merged %d), countries: %d. Time: %v",
		src.Name(), ds.store.Len(), b.merged, len(ds.catalog), time.Since(start))

	return ds, nil
}

func newDataset(store *ColumnStore) *Dataset {
	ds := &Dataset{
		store:    store,
		index:    make(map[string]int32, len(store.CountryDict)),
		snapshot: store.Snapshot(),
	}

	for id, name := range store.CountryDict {
		ds.index[name] = int32(id)
	}

	for _, s := range ds.snapshot {
		ds.totals.Confirmed += s.Confirmed
		ds.totals.Deaths += s.Deaths
		ds.totals.Recovered += s.Recovered
	}

	ds.catalog = append([]string(nil), store.CountryDict...)
	sort.Strings(ds.catalog)

	return ds
}

func (d *Dataset) Source() string {
	return d.source
}

func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// Len is the number of (country, date) rows.
func (d *Dataset) Len() int {
	return d.store.Len()
}

func (d *Dataset) Snapshot() []CountrySnapshot {
	return append([]CountrySnapshot(nil), d.snapshot...)
}

func (d *Dataset) Totals() GlobalTotals {
	return d.totals
}

func (d *Dataset) Catalog() []string {
	return append([]string(nil), d.catalog...)
}

func (d *Dataset) HasCountry(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Series returns the date-ascending rows of one country.
func (d *Dataset) Series(country string) ([]DailyMetric, bool) {
	id, ok := d.index[country]
	if !ok {
		return nil, false
	}
	return d.store.CountrySeries(id), true
}

// WorldSeries returns counters summed over all countries per date.
func (d *Dataset) WorldSeries() []DailyMetric {
	return d.store.WorldSeries()
}
