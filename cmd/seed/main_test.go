package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/CoronaDash/app/repository"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/database"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

func newTestRepo(t *testing.T) repository.CaseRecordRepository {
	t.Helper()
	db, err := database.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	return repository.NewFactory(db).GetCaseRecordRepository()
}

func TestRun_ImportCountTruncate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, run(ctx, repo, []string{"import", "../../data/cases.csv"}, &out))
	assert.Contains(t, out.String(), "Imported 18 records")

	out.Reset()
	require.NoError(t, run(ctx, repo, []string{"count"}, &out))
	assert.Equal(t, "18 case records\n", out.String())

	// the imported table serves as a dataset source
	ds, err := dataset.Load(ctx, dataset.DBSource{Repo: repo}, dataset.Options{})
	require.NoError(t, err)
	assert.Equal(t, 18, ds.Len())
	assert.True(t, ds.HasCountry("Korea, South"))

	out.Reset()
	require.NoError(t, run(ctx, repo, []string{"truncate"}, &out))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRun_ImportRejectsMalformedFileWithoutWriting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("country,date,confirmed,deaths,recovered\nA,2021-01-01,1,0,0\nB,2021-01-01,-5,0,0\n"), 0o644))

	err := run(ctx, repo, []string{"import", path}, &bytes.Buffer{})
	require.ErrorIs(t, err, dataset.ErrMalformed)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRun_Usage(t *testing.T) {
	repo := newTestRepo(t)

	assert.ErrorIs(t, run(context.Background(), repo, []string{"import"}, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run(context.Background(), repo, []string{"migrate"}, &bytes.Buffer{}), errUsage)
}
