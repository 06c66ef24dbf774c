// Package selector derives the time series shown by the country line chart.
package selector

import (
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

const worldKey = "\x00world"

// Selector is safe for concurrent use. Results for the world view and for
// catalog countries are memoized; unknown names are answered without caching.
type Selector struct {
	ds       *dataset.Dataset
	memo     sync.Map // key -> dataset.TimeSeries
	group    singleflight.Group
	computed atomic.Int64
}

func New(ds *dataset.Dataset) *Selector {
	return &Selector{ds: ds}
}

// SelectView returns the world aggregate when country is empty, otherwise the
// series of that country. Unknown countries yield an empty series.
func (s *Selector) SelectView(country string) dataset.TimeSeries {
	if country != "" && !s.ds.HasCountry(country) {
		return dataset.TimeSeries{Country: country, Points: []dataset.DailyMetric{}}
	}

	key := country
	if key == "" {
		key = worldKey
	}

	if v, ok := s.memo.Load(key); ok {
		return clone(v.(dataset.TimeSeries))
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		if v, ok := s.memo.Load(key); ok {
			return v, nil
		}
		// memo entries outlive the caller's string
		ts := s.compute(strings.Clone(country))
		s.memo.Store(strings.Clone(key), ts)
		return ts, nil
	})
	return clone(v.(dataset.TimeSeries))
}

func (s *Selector) compute(country string) dataset.TimeSeries {
	s.computed.Add(1)

	if country == "" {
		return dataset.TimeSeries{Points: s.ds.WorldSeries()}
	}
	points, _ := s.ds.Series(country)
	return dataset.TimeSeries{Country: country, Points: points}
}

// Catalog lists the selectable countries.
func (s *Selector) Catalog() []string {
	return s.ds.Catalog()
}

func clone(ts dataset.TimeSeries) dataset.TimeSeries {
	ts.Points = append([]dataset.DailyMetric{}, ts.Points...)
	return ts
}
