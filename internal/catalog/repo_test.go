package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/pkg/database"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewRepo(db)
}

func TestRepoUpsertAndAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Upsert(ctx, wideCatalog()))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, wideCatalog(), got)

	updated := wideCatalog()[:1]
	updated[0].Price = 89
	updated[0].IsFeatured = false
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, 89.0, got[0].Price)
	assert.False(t, got[0].IsFeatured)
}

func TestRepoLoaderFeedsStore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.Upsert(ctx, sampleCourses()))

	s := NewStore("sqlite", repo.Loader(), quietLogger())
	cat, err := s.Reload(ctx)
	require.NoError(t, err)

	cr := DefaultCriteria()
	cr.Sort = SortPriceLow
	assert.Equal(t, []int{2, 1}, ids(cat.Search(cr)))
}

func TestRepoUpsertRollsBackOnConflict(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	courses := sampleCourses()
	courses[1].Slug = courses[0].Slug
	assert.Error(t, repo.Upsert(ctx, courses))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
