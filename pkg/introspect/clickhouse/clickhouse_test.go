package clickhouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/introspect"
	. "github.com/pseudomuto/schemata/pkg/introspect/clickhouse"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	chcontainer "github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRegistered(t *testing.T) {
	l, err := introspect.Get("clickhouse")
	require.NoError(t, err)
	require.Equal(t, "clickhouse", l.Name())
}

func TestNewClientFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := NewClient(ctx, "localhost:1")
	require.ErrorContains(t, err, "failed to connect to clickhouse")
	require.Nil(t, client)

	_, err = NewClient(ctx, "clickhouse://localhost:9000?dial_timeout=nope")
	require.ErrorContains(t, err, "failed to parse clickhouse DSN")
}

var fixture = []string{
	`CREATE DATABASE analytics COMMENT 'event data'`,
	`CREATE TABLE analytics.events (
		id UInt64,
		ts DateTime64(3) DEFAULT now64(3),
		name LowCardinality(String),
		user_id Nullable(UInt64) COMMENT 'anonymous when null',
		day Date MATERIALIZED toDate(ts),
		INDEX name_idx name TYPE bloom_filter GRANULARITY 4
	) ENGINE = MergeTree ORDER BY (id, ts) COMMENT 'raw events'`,
	`CREATE VIEW analytics.daily AS SELECT day, count() AS total FROM analytics.events GROUP BY day`,
}

func startClickHouse(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping ClickHouse container test in short mode")
	}

	ctx := context.Background()
	container, err := chcontainer.Run(ctx,
		"clickhouse/clickhouse-server:latest-alpine",
		chcontainer.WithUsername("default"),
		chcontainer.WithPassword(""),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port("8123/tcp")).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	return dsn
}

func TestRead(t *testing.T) {
	dsn := startClickHouse(t)
	ctx := context.Background()

	client, err := NewClient(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	for _, stmt := range fixture {
		require.NoError(t, client.Exec(ctx, stmt))
	}

	cat, err := client.Read(ctx, "analytics")
	require.NoError(t, err)
	require.Equal(t, []string{"analytics"}, cat.Schemas.Names())

	s, ok := cat.Schema("analytics")
	require.True(t, ok)
	require.Equal(t, "event data", s.Comment)

	events, ok := s.Table("events")
	require.True(t, ok)
	require.Equal(t, "MergeTree", events.Engine)
	require.Equal(t, "raw events", events.Comment)
	require.Equal(t, []string{"id", "ts", "name", "user_id", "day"}, events.Columns.Names())

	col, _ := events.Columns.Get("ts")
	require.Equal(t, "DateTime64", col.DataType)
	require.Equal(t, "now64(3)", *col.DefaultValue)

	col, _ = events.Columns.Get("user_id")
	require.True(t, col.Nullable)
	require.Equal(t, "UInt64", col.DataType)
	require.Equal(t, "anonymous when null", col.Comment)

	col, _ = events.Columns.Get("day")
	require.Equal(t, "MATERIALIZED toDate(ts)", *col.DefaultValue)

	pk, ok := events.Constraints.Get("events_pkey")
	require.True(t, ok)
	require.Equal(t, catalog.PrimaryKey, pk.Type)
	require.Equal(t, []string{"id", "ts"}, pk.Columns)

	idx, ok := events.Indexes.Get("name_idx")
	require.True(t, ok)
	require.Equal(t, "bloom_filter", idx.Method)
	require.Equal(t, []string{"name"}, idx.Columns)

	daily, ok := s.View("daily")
	require.True(t, ok)
	require.False(t, daily.Materialized)
	require.Contains(t, daily.Definition, "FROM analytics.events")
	require.Equal(t, []string{"day", "total"}, daily.Columns.Names())
}

func TestLoad(t *testing.T) {
	dsn := startClickHouse(t)

	cat, err := introspect.Load(context.Background(), "clickhouse", dsn)
	require.NoError(t, err)
	require.Equal(t, []string{"default"}, cat.Schemas.Names())
}
