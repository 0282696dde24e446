package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"seedshare/config"
	deliverycontext "seedshare/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCapturedQueryLogger(t *testing.T, cfg *config.Config) (*queryLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l, ok := newGormSlogLogger(base, cfg).(*queryLogger)
	require.True(t, ok)

	return l, &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Second

	tests := []struct {
		name      string
		begin     time.Time
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:  "missing rows are not logged",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
		},
		{
			name:      "unique violations are warnings",
			begin:     time.Now(),
			err:       errors.New("UNIQUE constraint failed: users.email"),
			wantLevel: "WARN",
			wantMsg:   "GORM unique constraint violated",
		},
		{
			name:      "other failures are errors",
			begin:     time.Now(),
			err:       errors.New("connection reset"),
			wantLevel: "ERROR",
			wantMsg:   "GORM query failed",
		},
		{
			name:      "slow statements are warnings",
			begin:     time.Now().Add(-2 * time.Second),
			wantLevel: "WARN",
			wantMsg:   "GORM slow query",
		},
		{
			name:  "fast statements are quiet outside debug",
			begin: time.Now(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturedQueryLogger(t, cfg)

			l.Trace(context.Background(), tt.begin, sqlFn(`SELECT * FROM "offers"`), tt.err)

			lines := logLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, `SELECT * FROM "offers"`, lines[0]["sql"])
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newCapturedQueryLogger(t, cfg)

	ctx := deliverycontext.WithLogger(context.Background(), l.base.With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), nil)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
}

func TestNewGormSlogLogger_DefaultThreshold(t *testing.T) {
	l, _ := newCapturedQueryLogger(t, &config.Config{})

	assert.Equal(t, defaultSlowQueryThreshold, l.slowThreshold)
}
