package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func sqlRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	scoped, scopedBuf := newBufferLogger()
	l := newGormSlogLogger(base, nil)

	ctx := deliverycontext.WithLogger(context.Background(), scoped.With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlRows(`UPDATE "identities" SET "x_access_token"=$1`, 0), errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	record := decodeRecord(t, scopedBuf)
	assert.Equal(t, "Query failed", record["msg"])
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "postgres", record["component"])
	assert.Equal(t, "UPDATE", record["op"])
	assert.Equal(t, "boom", record["error"])
}

func TestGormSlogLogger_AttachesRequestIDWithoutScopedLogger(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, nil)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-2")
	l.Warn(ctx, "pool %s", "exhausted")

	record := decodeRecord(t, buf)
	assert.Equal(t, "req-2", record["request_id"])
	assert.Equal(t, "postgres", record["component"])
	assert.Equal(t, "pool exhausted", record["message"])
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is not an error", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, nil)

		l.Trace(context.Background(), time.Now(), sqlRows("SELECT 1", 0), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("fast queries are quiet outside debug", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, nil)

		l.Trace(context.Background(), time.Now(), sqlRows("SELECT 1", 1), nil)
		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, nil)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlRows("delete from sessions", 3), nil)
		record := decodeRecord(t, buf)
		assert.Equal(t, "Slow query", record["msg"])
		assert.Equal(t, "DELETE", record["op"])
		assert.InDelta(t, 3, record["rows"], 0)
	})

	t.Run("debug logs every query", func(t *testing.T) {
		base, buf := newBufferLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newGormSlogLogger(base, cfg)

		l.Trace(context.Background(), time.Now(), sqlRows("SELECT 1", 1), nil)
		assert.Equal(t, "Query", decodeRecord(t, buf)["msg"])
	})

	t.Run("silent mode", func(t *testing.T) {
		base, buf := newBufferLogger()
		l := newGormSlogLogger(base, nil).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlRows("SELECT 1", 1), errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	base, _ := newBufferLogger()

	filter, ok := newGormSlogLogger(base, nil).(gorm.ParamsFilter)
	require.True(t, ok)
	sql, params := filter.ParamsFilter(context.Background(), "SELECT $1", "secret")
	assert.Equal(t, "SELECT $1", sql)
	assert.Nil(t, params)

	cfg := &config.Config{}
	cfg.Env.Debug = true
	filter = newGormSlogLogger(base, cfg).(gorm.ParamsFilter)
	_, params = filter.ParamsFilter(context.Background(), "SELECT $1", "secret")
	assert.Equal(t, []any{"secret"}, params)
}
