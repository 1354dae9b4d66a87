package services

import (
	"context"
	"testing"

	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHealthy(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: ":memory:"}

	result := HealthCheck(context.Background(), cfg, db)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Schema)
	assert.Equal(t, "disabled", result.Authorizer)
	assert.Equal(t, "sqlite-pure", result.Details["database_type"])
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, database.Close(db))

	result := HealthCheck(context.Background(), &config.Config{DBType: "sqlite-pure"}, db)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Database)
	assert.Equal(t, "unknown", result.Schema)
	assert.Contains(t, result.ErrorMessage, "Database ping failed")
}

func TestHealthCheckAuthorizerUnreachable(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{
		DBType:        "sqlite-pure",
		AuthzURL:      "http://127.0.0.1:1",
		AuthzClientID: "client",
	}

	result := HealthCheck(context.Background(), cfg, db)
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Authorizer)
	assert.Equal(t, "ok", result.Database)
}
