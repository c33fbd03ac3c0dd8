package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2.0, cfg.Engine.CurveOffset)
	assert.Equal(t, 0.4, cfg.Engine.ZoomMin)
	assert.Equal(t, 15.0, cfg.Engine.ZoomMax)
	assert.Equal(t, 8, cfg.Engine.LeaderboardLimit)
	assert.Equal(t, "PENTOS", cfg.Engine.StartFor("Targaryen"))
	assert.Equal(t, "WINTERFELL", cfg.Engine.StartFor("Stark"))
	assert.Equal(t, Duration(4*time.Second), cfg.Playback.Interval)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chronicle init")
}

func TestLoad_WrittenDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, Default().Engine, cfg.Engine)
	assert.Equal(t, Duration(4*time.Second), cfg.Playback.Interval)
	assert.Equal(t, CatalogPath(tmpDir), cfg.SQLite.Path)
}

func TestWriteDefault_AlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, WriteDefault(tmpDir))

	err := WriteDefault(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, Exists(tmpDir))

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))
}

func TestLoad_PartialOverride(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(tmpDir), 0755))

	content := "engine:\n  zoom_max: 20\n  default_start: KINGS_LANDING\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(tmpDir), []byte(content), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	// Overridden fields apply; everything else keeps its default.
	assert.Equal(t, 20.0, cfg.Engine.ZoomMax)
	assert.Equal(t, "KINGS_LANDING", cfg.Engine.DefaultStart)
	assert.Equal(t, 0.4, cfg.Engine.ZoomMin)
	assert.Equal(t, 2.0, cfg.Engine.CurveOffset)
}

func TestLoad_InvalidInterval(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(tmpDir), 0755))

	content := "playback:\n  interval: soon\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(tmpDir), []byte(content), 0644))

	_, err := Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing duration")
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, WriteDefault(tmpDir))

	dbPath := filepath.Join(tmpDir, "elsewhere.db")
	t.Setenv("CHRONICLE_DB_PATH", dbPath)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.SQLite.Path)
}
