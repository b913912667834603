package ratelimit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"natours/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_BlocksAfterMax(t *testing.T) {
	limiter := NewMemoryLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "127.0.0.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
	}

	res, err := limiter.Allow(ctx, "127.0.0.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 3, res.Limit)

	other, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestParseScriptResult(t *testing.T) {
	tests := []struct {
		name      string
		vals      any
		wantCount int64
		wantTTL   int64
		wantErr   bool
	}{
		{name: "ints", vals: []any{int64(3), int64(3599000)}, wantCount: 3, wantTTL: 3599000},
		{name: "strings", vals: []any{"7", "10"}, wantCount: 7, wantTTL: 10},
		{name: "wrong shape", vals: []any{int64(1)}, wantErr: true},
		{name: "not a list", vals: "OK", wantErr: true},
		{name: "bad count", vals: []any{1.5, int64(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, ttl, err := parseScriptResult(tt.vals)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantTTL, ttl)
		})
	}
}

func TestNewLimiter_FallsBackToMemory(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Max: 10, Window: time.Minute}}

	limiter := NewLimiter(cfg, nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.IsType(t, &memoryLimiter{}, limiter)
}
