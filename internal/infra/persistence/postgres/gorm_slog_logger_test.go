package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
)

func newBufferedGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT * FROM questionnaires", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("fast queries are quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged with the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)
		reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-9"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection refused"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "request_id=req-9")
	})

	t.Run("integrity violations warn with the sqlstate", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: "23505"})

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM constraint violation")
		assert.Contains(t, buf.String(), "sqlstate=23505")
		assert.NotContains(t, buf.String(), "GORM query failed")
	})

	t.Run("long statements are truncated", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, true)
		long := func() (string, int64) { return "INSERT INTO responses " + strings.Repeat("x", 3000), 1 }

		l.Trace(context.Background(), time.Now(), long, nil)

		assert.Contains(t, buf.String(), "...")
		assert.Less(t, len(buf.String()), 2500)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("debug logs every statement", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, true)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM query")
		assert.Contains(t, buf.String(), "questionnaires")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferedGormLogger(&buf, true).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
