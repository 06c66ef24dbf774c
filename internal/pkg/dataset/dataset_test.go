package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/app/repository"
)

type sliceSource []models.CaseRecord

func (s sliceSource) Name() string { return "slice" }

func (s sliceSource) Each(_ context.Context, fn func(models.CaseRecord) error) error {
	for _, r := range s {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func scenario() sliceSource {
	return sliceSource{
		rec("A", "2021-01-01", 10, 1, 2),
		rec("B", "2021-01-01", 5, 0, 1),
	}
}

func TestLoad_Scenario(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), scenario(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "slice", ds.Source())
	assert.False(t, ds.LoadedAt().IsZero())
	assert.Equal(t, []string{"A", "B"}, ds.Catalog())
	assert.Equal(t, GlobalTotals{Confirmed: 15, Deaths: 1, Recovered: 3}, ds.Totals())

	snap := ds.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "A", snap[0].Country)

	series, ok := ds.Series("A")
	require.True(t, ok)
	require.Len(t, series, 1)
	assert.EqualValues(t, 10, series[0].Confirmed)

	_, ok = ds.Series("C")
	assert.False(t, ok)
	assert.False(t, ds.HasCountry("C"))
	assert.True(t, ds.HasCountry("B"))
}

func TestLoad_TotalsUseLatestSnapshot(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), sliceSource{
		rec("A", "2021-01-01", 10, 1, 2),
		rec("A", "2021-01-02", 20, 2, 4),
		rec("B", "2021-01-01", 5, 0, 1),
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, GlobalTotals{Confirmed: 25, Deaths: 2, Recovered: 5}, ds.Totals())
}

func TestLoad_CatalogIsSortedAndUnique(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), sliceSource{
		rec("Peru", "2021-01-01", 1, 0, 0),
		rec("Chile", "2021-01-01", 1, 0, 0),
		rec("Peru", "2021-01-02", 2, 0, 0),
		rec("Brazil", "2021-01-01", 1, 0, 0),
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Brazil", "Chile", "Peru"}, ds.Catalog())
}

func TestLoad_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	ds, err := Load(context.Background(), scenario(), Options{})
	require.NoError(t, err)

	cat := ds.Catalog()
	cat[0] = "mutated"
	snap := ds.Snapshot()
	snap[0].Confirmed = -1
	series, _ := ds.Series("A")
	series[0].Confirmed = -1

	assert.Equal(t, "A", ds.Catalog()[0])
	assert.EqualValues(t, 10, ds.Snapshot()[0].Confirmed)
	again, _ := ds.Series("A")
	assert.EqualValues(t, 10, again[0].Confirmed)
}

func TestLoad_InconsistentCounts(t *testing.T) {
	t.Parallel()

	src := sliceSource{rec("A", "2021-01-01", 1, 2, 0)}

	ds, err := Load(context.Background(), src, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	_, err = Load(context.Background(), src, Options{Strict: true})
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, models.ErrInconsistentCounts)
}

func TestLoad_EmptySource(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), sliceSource{}, Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestCSVSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cases.csv")
	content := "country,date,confirmed,deaths,recovered\n" +
		"A,2021-01-01,10,1,2\n" +
		"B,2021-01-01,5,0,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := Load(context.Background(), CSVSource{Path: path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "csv:"+path, ds.Source())
	assert.Equal(t, GlobalTotals{Confirmed: 15, Deaths: 1, Recovered: 3}, ds.Totals())
}

func TestCSVSource_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}, Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVSource_CancelledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, os.WriteFile(path, []byte("country,date,confirmed,deaths,recovered\nA,2021-01-01,1,0,0\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, CSVSource{Path: path}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDBSource(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CaseRecord{}))

	repo := repository.NewCaseRecordRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateInBatches(ctx, []models.CaseRecord(scenario()), 10))

	ds, err := Load(ctx, DBSource{Repo: repo}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ds.Catalog())
	assert.Equal(t, GlobalTotals{Confirmed: 15, Deaths: 1, Recovered: 3}, ds.Totals())

	series, ok := ds.Series("A")
	require.True(t, ok)
	require.Len(t, series, 1)
	assert.Equal(t, "2021-01-01", series[0].Date.Format(models.DateLayout))
}

func TestDBSource_RejectsInvalidRows(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CaseRecord{}))

	repo := repository.NewCaseRecordRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateInBatches(ctx, []models.CaseRecord{rec("A", "2021-01-01", -3, 0, 0)}, 10))

	_, err = Load(ctx, DBSource{Repo: repo}, Options{})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDBSource_TrimsCountryBeforeValidating(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CaseRecord{}))

	repo := repository.NewCaseRecordRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateInBatches(ctx, []models.CaseRecord{rec("  A ", "2021-01-01", 3, 0, 0)}, 10))
	ds, err := Load(ctx, DBSource{Repo: repo}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ds.Catalog())

	require.NoError(t, repo.CreateInBatches(ctx, []models.CaseRecord{rec("   ", "2021-01-02", 1, 0, 0)}, 10))
	_, err = Load(ctx, DBSource{Repo: repo}, Options{})
	assert.ErrorIs(t, err, ErrMalformed)
}
