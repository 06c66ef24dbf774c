package dataset

import (
	"sort"
	"strings"
	"time"

	"github.com/ManuelReschke/CoronaDash/app/models"
)

// ColumnStore holds case data in struct-of-arrays form, sorted by (country, date).
type ColumnStore struct {
	// Data columns
	Dates     []int32 // YYYYMMDD
	Confirmed []int64
	Deaths    []int64
	Recovered []int64

	// Dictionary encoded country IDs (0..N) and their names
	CountryIDs  []int32
	CountryDict []string

	// ranges[id] is the [start, end) row span of country id
	ranges [][2]int
}

// dateKey packs a date into YYYYMMDD; keys order the same way dates do.
func dateKey(t time.Time) int32 {
	y, m, d := t.Date()
	return int32(y*10000 + int(m)*100 + d)
}

func keyDate(k int32) time.Time {
	return time.Date(int(k/10000), time.Month(k/100%100), int(k%100), 0, 0, 0, 0, time.UTC)
}

type rowKey struct {
	country int32
	date    int32
}

// storeBuilder accumulates records; repeated (country, date) pairs are summed.
type storeBuilder struct {
	store   *ColumnStore
	country map[string]int32
	rows    map[rowKey]int
	merged  int
}

func newStoreBuilder() *storeBuilder {
	return &storeBuilder{
		store:   &ColumnStore{},
		country: make(map[string]int32),
		rows:    make(map[rowKey]int),
	}
}

func (b *storeBuilder) add(rec models.CaseRecord) {
	s := b.store

	name := strings.TrimSpace(rec.Country)
	cid, ok := b.country[name]
	if !ok {
		cid = int32(len(s.CountryDict))
		s.CountryDict = append(s.CountryDict, name)
		b.country[name] = cid
	}

	key := rowKey{country: cid, date: dateKey(rec.Date)}
	if idx, ok := b.rows[key]; ok {
		s.Confirmed[idx] += rec.Confirmed
		s.Deaths[idx] += rec.Deaths
		s.Recovered[idx] += rec.Recovered
		b.merged++
		return
	}

	b.rows[key] = len(s.Dates)
	s.Dates = append(s.Dates, key.date)
	s.CountryIDs = append(s.CountryIDs, cid)
	s.Confirmed = append(s.Confirmed, rec.Confirmed)
	s.Deaths = append(s.Deaths, rec.Deaths)
	s.Recovered = append(s.Recovered, rec.Recovered)
}

// build sorts the columns by (country, date) and indexes each country's span.
func (b *storeBuilder) build() *ColumnStore {
	s := b.store
	n := len(s.Dates)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool {
		a, c := perm[i], perm[j]
		if s.CountryIDs[a] != s.CountryIDs[c] {
			return s.CountryIDs[a] < s.CountryIDs[c]
		}
		return s.Dates[a] < s.Dates[c]
	})

	sorted := &ColumnStore{
		Dates:       make([]int32, n),
		Confirmed:   make([]int64, n),
		Deaths:      make([]int64, n),
		Recovered:   make([]int64, n),
		CountryIDs:  make([]int32, n),
		CountryDict: s.CountryDict,
		ranges:      make([][2]int, len(s.CountryDict)),
	}
	for dst, src := range perm {
		sorted.Dates[dst] = s.Dates[src]
		sorted.Confirmed[dst] = s.Confirmed[src]
		sorted.Deaths[dst] = s.Deaths[src]
		sorted.Recovered[dst] = s.Recovered[src]
		sorted.CountryIDs[dst] = s.CountryIDs[src]
	}

	// every dictionary entry owns at least one row, so spans are never empty
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || sorted.CountryIDs[i] != sorted.CountryIDs[start] {
			sorted.ranges[sorted.CountryIDs[start]] = [2]int{start, i}
			start = i
		}
	}
	return sorted
}

func (cs *ColumnStore) Len() int {
	return len(cs.Dates)
}

func (cs *ColumnStore) metric(i int, country string) DailyMetric {
	return DailyMetric{
		Country:   country,
		Date:      keyDate(cs.Dates[i]),
		Confirmed: cs.Confirmed[i],
		Deaths:    cs.Deaths[i],
		Recovered: cs.Recovered[i],
	}
}

// CountrySeries returns the date-ascending rows of country id.
func (cs *ColumnStore) CountrySeries(id int32) []DailyMetric {
	span := cs.ranges[id]
	name := cs.CountryDict[id]
	out := make([]DailyMetric, 0, span[1]-span[0])
	for i := span[0]; i < span[1]; i++ {
		out = append(out, cs.metric(i, name))
	}
	return out
}

// WorldSeries sums every country's counters per date, date ascending.
func (cs *ColumnStore) WorldSeries() []DailyMetric {
	type sums struct {
		confirmed, deaths, recovered int64
	}
	byDate := make(map[int32]*sums)
	for i, d := range cs.Dates {
		acc, ok := byDate[d]
		if !ok {
			acc = &sums{}
			byDate[d] = acc
		}
		acc.confirmed += cs.Confirmed[i]
		acc.deaths += cs.Deaths[i]
		acc.recovered += cs.Recovered[i]
	}

	keys := make([]int32, 0, len(byDate))
	for d := range byDate {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]DailyMetric, 0, len(keys))
	for _, d := range keys {
		acc := byDate[d]
		out = append(out, DailyMetric{
			Date:      keyDate(d),
			Confirmed: acc.confirmed,
			Deaths:    acc.deaths,
			Recovered: acc.recovered,
		})
	}
	return out
}

// Snapshot returns each country's latest row, ordered by confirmed desc then name.
func (cs *ColumnStore) Snapshot() []CountrySnapshot {
	out := make([]CountrySnapshot, 0, len(cs.CountryDict))
	for id, name := range cs.CountryDict {
		last := cs.ranges[id][1] - 1
		out = append(out, CountrySnapshot{
			Country:   name,
			Date:      keyDate(cs.Dates[last]),
			Confirmed: cs.Confirmed[last],
			Deaths:    cs.Deaths[last],
			Recovered: cs.Recovered[last],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confirmed != out[j].Confirmed {
			return out[i].Confirmed > out[j].Confirmed
		}
		return out[i].Country < out[j].Country
	})
	return out
}
