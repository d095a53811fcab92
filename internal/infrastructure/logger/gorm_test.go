package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level string) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, 100*time.Millisecond), logs
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		l, logs := newObservedGormLogger("warn")
		l.Trace(context.Background(), time.Now(), statement("INSERT"), errors.New("duplicate key"))

		entries := logs.FilterMessage("SQL Error").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, logs := newObservedGormLogger("warn")
		l.Trace(context.Background(), time.Now(), statement("SELECT"), gormlogger.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("slow query", func(t *testing.T) {
		l, logs := newObservedGormLogger("warn")
		l.Trace(context.Background(), time.Now().Add(-time.Second), statement("SELECT"), nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
		assert.Contains(t, logs.All()[0].Message, "SLOW SQL")
	})

	t.Run("normal query only at info", func(t *testing.T) {
		l, logs := newObservedGormLogger("warn")
		l.Trace(context.Background(), time.Now(), statement("SELECT"), nil)
		assert.Zero(t, logs.Len())

		l, logs = newObservedGormLogger("info")
		ctx := WithRequestID(context.Background(), "req-7")
		l.Trace(ctx, time.Now(), statement("SELECT 1"), nil)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-7", logs.All()[0].ContextMap()["request_id"])
		assert.Equal(t, "SELECT 1", logs.All()[0].ContextMap()["sql"])
	})

	t.Run("silent", func(t *testing.T) {
		l, logs := newObservedGormLogger("silent")
		l.Trace(context.Background(), time.Now(), statement("SELECT"), errors.New("boom"))
		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	l, _ := newObservedGormLogger("warn")
	silent := l.LogMode(gormlogger.Silent).(*GormLogger)

	assert.Equal(t, gormlogger.Silent, silent.logLevel)
	assert.Equal(t, gormlogger.Warn, l.logLevel)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("bogus"))
}
