package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"natours/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction
	cfg.Env.ServiceName = "natours"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := build(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("Tour created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Tour created", line["msg"])
	assert.Equal(t, "natours", line["service"])
	assert.Equal(t, "production", line["env"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})

	assert.EqualError(t, err, "unknown log level: loud")
}
