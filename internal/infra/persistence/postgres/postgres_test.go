package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{
		logger:   slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		slowWait: 50 * time.Millisecond,
	}
	ctx := context.Background()
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits stays quiet", func(t *testing.T) {
		buf.Reset()
		m.observe(ctx, base, base)
		assert.Empty(t, buf.String())
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		buf.Reset()
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}
		m.observe(ctx, base, cur)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "waits=2")
		assert.Contains(t, out, "avgWait=5ms")
		assert.Contains(t, out, "inUse=4")
	})

	t.Run("slow waits log at warn", func(t *testing.T) {
		buf.Reset()
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}
		m.observe(ctx, base, cur)

		assert.Contains(t, buf.String(), "level=WARN")
	})
}
