package postgres

import (
	"context"
	"testing"
	"time"

	"sitebuilder/internal/config"
	"sitebuilder/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:     config.DriverPostgres,
		DBHost:     " db.internal ",
		DBPort:     "5433",
		DBName:     "site",
		DBUser:     "site",
		DBPassword: "secret",
		DBSSLMode:  "disable",
	}
}

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"host=db.internal port=5433 user=site password=secret dbname=site sslmode=disable",
		DSN(testConfig()))
}

func TestPoolConfig_AppliesLimits(t *testing.T) {
	cfg := testConfig()
	cfg.ConnectTimeout = 3 * time.Second
	cfg.PoolMaxConns = 4
	cfg.PoolMinConns = 9
	cfg.PoolMaxConnLifetime = time.Hour
	cfg.PoolHealthCheckPeriod = 15 * time.Second

	pcfg, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pcfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pcfg.ConnConfig.Port)
	assert.Equal(t, 3*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(4), pcfg.MaxConns)
	assert.Equal(t, int32(4), pcfg.MinConns)
	assert.Equal(t, time.Hour, pcfg.MaxConnLifetime)
	assert.Equal(t, 15*time.Second, pcfg.HealthCheckPeriod)
	assert.Equal(t, applicationName, pcfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_ZeroKeepsDefaults(t *testing.T) {
	pcfg, err := PoolConfig(testConfig())
	require.NoError(t, err)
	assert.Positive(t, pcfg.MaxConns)
	assert.Equal(t, int32(0), pcfg.MinConns)
}

func TestClosedPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.ErrorIs(t, p.Ping(ctx), database.ErrClosed)
	_, err := p.Exec(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrClosed)
	_, err = p.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, database.ErrClosed)
	assert.ErrorIs(t, p.QueryRow(ctx, "SELECT 1").Scan(), database.ErrClosed)
	assert.NoError(t, p.Close())
	assert.Nil(t, p.SQLDB())
}
