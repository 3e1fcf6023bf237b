package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/V2__add_index.sql":   {Data: []byte("CREATE INDEX i ON t (c);\n")},
		"sql/V1__create.sql":      {Data: []byte("  CREATE TABLE t (c INT);  ")},
		"sql/README.md":           {Data: []byte("ignored")},
		"sql/v3__lowercase.sql":   {Data: []byte("SELECT 1")},
		"sql/nested/V9__skip.sql": {Data: []byte("SELECT 1")},
	}

	migs, err := loadMigrations(fsys, "sql")
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (c INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"V01__b.sql": {Data: []byte("SELECT 2")},
	}, ".")
	require.Error(t, err)

	_, err = loadMigrations(fstest.MapFS{"V1__a.sql": {Data: []byte("   ")}}, ".")
	require.Error(t, err)
}

func TestLoadMigrations_MissingDirIsEmpty(t *testing.T) {
	migs, err := loadMigrations(fstest.MapFS{}, "sql")
	require.NoError(t, err)
	assert.Empty(t, migs)
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	migs, err := loadMigrations(embedded, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, "create_site_tables", migs[0].Name)
}

func TestPlan(t *testing.T) {
	migs := []Migration{
		{Version: 1, Filename: "V1__a.sql", Checksum: "aa"},
		{Version: 2, Filename: "V2__b.sql", Checksum: "bb"},
		{Version: 3, Filename: "V3__c.sql", Checksum: "cc"},
	}

	pending, err := plan(migs, map[int64]string{1: "aa"})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].Version)

	pending, err = plan(migs, map[int64]string{1: "aa", 2: "bb", 3: "cc"})
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = plan(migs, map[int64]string{2: "changed"})
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Contains(t, err.Error(), "V2__b.sql")
}

func TestApply_RejectsMissingInputs(t *testing.T) {
	_, err := Runner{FS: embedded, Dir: "sql"}.Apply(context.Background(), nil)
	assert.Error(t, err)
}
