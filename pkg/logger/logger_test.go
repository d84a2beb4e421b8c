package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"opiol_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func testConfig(t *testing.T, mode, level string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Mode: mode},
		Log: config.LogConfig{
			Service:   "opiol-backend",
			Level:     level,
			File:      filepath.Join(t.TempDir(), "app.log"),
			MaxSizeMB: 1,
		},
	}
}

func TestNew_WritesServiceFieldToFile(t *testing.T) {
	cfg := testConfig(t, "release", "")
	console := &zaptest.Buffer{}

	l := New(cfg, console)
	l.Info("draft saved", zap.String("client_id", "c1"))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "draft saved", entry["msg"])
	assert.Equal(t, "opiol-backend", entry["service"])
	assert.Equal(t, "c1", entry["client_id"])

	require.Len(t, console.Lines(), 1)
	assert.Contains(t, console.Lines()[0], "draft saved")
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"release defaults to info", "release", "", false, true},
		{"debug mode defaults to debug", "debug", "", true, true},
		{"explicit level wins", "debug", "warn", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(testConfig(t, tt.mode, tt.level), &zaptest.Buffer{})
			assert.Equal(t, tt.wantDebug, l.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, l.Core().Enabled(zap.InfoLevel))
		})
	}
}
