package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/CoronaDash/app/models"
)

func d(day string) time.Time {
	t, err := time.Parse(models.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(country, day string, c, de, r int64) models.CaseRecord {
	return models.CaseRecord{Country: country, Date: d(day), Confirmed: c, Deaths: de, Recovered: r}
}

func buildStore(recs ...models.CaseRecord) (*ColumnStore, int) {
	b := newStoreBuilder()
	for _, r := range recs {
		b.add(r)
	}
	return b.build(), b.merged
}

func TestDateKeyRoundTrip(t *testing.T) {
	t.Parallel()

	day := d("2020-02-29")
	assert.EqualValues(t, 20200229, dateKey(day))
	assert.True(t, keyDate(dateKey(day)).Equal(day))
}

func TestStoreBuilder_SortsAndIndexesCountries(t *testing.T) {
	t.Parallel()

	cs, merged := buildStore(
		rec("B", "2021-01-02", 7, 0, 1),
		rec("A", "2021-01-02", 12, 1, 3),
		rec("B", "2021-01-01", 5, 0, 1),
		rec("A", "2021-01-01", 10, 1, 2),
	)
	assert.Zero(t, merged)
	require.Equal(t, 4, cs.Len())
	assert.Equal(t, []string{"B", "A"}, cs.CountryDict)

	// B was seen first, so it owns ID 0 and the first span
	assert.Equal(t, []int32{0, 0, 1, 1}, cs.CountryIDs)
	assert.Equal(t, []int32{20210101, 20210102, 20210101, 20210102}, cs.Dates)

	a := cs.CountrySeries(1)
	require.Len(t, a, 2)
	assert.Equal(t, "A", a[0].Country)
	assert.EqualValues(t, 10, a[0].Confirmed)
	assert.EqualValues(t, 12, a[1].Confirmed)
	assert.True(t, a[0].Date.Before(a[1].Date))
}

func TestStoreBuilder_MergesDuplicatePairs(t *testing.T) {
	t.Parallel()

	cs, merged := buildStore(
		rec("Canada", "2021-01-01", 3, 1, 1),
		rec("Canada", "2021-01-01", 4, 0, 2),
		rec(" Canada ", "2021-01-01", 1, 0, 0),
	)
	assert.Equal(t, 2, merged)
	require.Equal(t, 1, cs.Len())
	assert.EqualValues(t, 8, cs.Confirmed[0])
	assert.EqualValues(t, 1, cs.Deaths[0])
	assert.EqualValues(t, 3, cs.Recovered[0])
}

func TestColumnStore_WorldSeriesSumsPerDate(t *testing.T) {
	t.Parallel()

	cs, _ := buildStore(
		rec("A", "2021-01-02", 12, 1, 3),
		rec("A", "2021-01-01", 10, 1, 2),
		rec("B", "2021-01-01", 5, 0, 1),
		rec("C", "2021-01-03", 1, 0, 0),
	)

	world := cs.WorldSeries()
	require.Len(t, world, 3)

	assert.Equal(t, "2021-01-01", world[0].Date.Format(models.DateLayout))
	assert.EqualValues(t, 15, world[0].Confirmed)
	assert.EqualValues(t, 1, world[0].Deaths)
	assert.EqualValues(t, 3, world[0].Recovered)

	assert.EqualValues(t, 12, world[1].Confirmed)
	assert.EqualValues(t, 1, world[2].Confirmed)
	for _, p := range world {
		assert.Empty(t, p.Country)
	}
}

func TestColumnStore_SnapshotUsesLatestRow(t *testing.T) {
	t.Parallel()

	cs, _ := buildStore(
		rec("A", "2021-01-01", 10, 1, 2),
		rec("A", "2021-01-05", 30, 2, 9),
		rec("B", "2021-01-03", 30, 0, 1),
		rec("C", "2021-01-01", 50, 5, 5),
	)

	snap := cs.Snapshot()
	require.Len(t, snap, 3)

	assert.Equal(t, "C", snap[0].Country)
	// A and B tie on confirmed; names break the tie
	assert.Equal(t, "A", snap[1].Country)
	assert.Equal(t, "B", snap[2].Country)

	assert.EqualValues(t, 30, snap[1].Confirmed)
	assert.EqualValues(t, 9, snap[1].Recovered)
	assert.Equal(t, "2021-01-05", snap[1].Date.Format(models.DateLayout))
}
