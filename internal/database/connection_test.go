package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorUnsupported(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":       "mysql",
		"mariadb":     "mysql",
		"postgres":    "postgres",
		"sqlite":      "sqlite",
		"sqlite-pure": "sqlite",
		"sqlserver":   "sqlserver",
	}
	for dbType, name := range cases {
		d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "trails", DBUser: "u"})
		require.NoError(t, err, dbType)
		assert.Equal(t, name, d.Name(), dbType)
	}
}

func TestConnectPureSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        filepath.Join(t.TempDir(), "trails.db"),
		DBConnectionLimit: 5,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	for _, table := range []string{"users", "trails", "locations", "drinks"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenMemoryEnforcesForeignKeys(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)
	defer Close(db)

	loc := models.Location{TrailID: "00000000-0000-0000-0000-000000000000", Name: "Nowhere"}
	err = db.Create(&loc).Error
	require.Error(t, err)
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "a.db?x=1", withQuery("a.db", "x=1"))
	assert.Equal(t, "a.db?mode=ro&x=1", withQuery("a.db?mode=ro", "x=1"))
}
