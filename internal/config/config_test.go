package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./patients", cfg.DataDir)
	assert.Equal(t, time.Now().Year(), cfg.ActiveYear)
	assert.Equal(t, DefaultClinicName, cfg.Clinic.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.ROF.MaxGroups)
	assert.Equal(t, 850, cfg.Report.PageWidth)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /srv/patients
active_year: 2024
clinic:
  name: Test Clinic
log:
  level: debug
`), 0o644))

	t.Setenv("CHIROFORGE_ROF_MAX_GROUPS", "6")
	t.Setenv("CHIROFORGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/patients", cfg.DataDir)
	assert.Equal(t, 2024, cfg.ActiveYear)
	assert.Equal(t, "Test Clinic", cfg.Clinic.Name)
	assert.Equal(t, DefaultClinicPhone, cfg.Clinic.Phone)
	assert.Equal(t, "warn", cfg.Log.Level, "env overrides the file")
	assert.Equal(t, 6, cfg.ROF.MaxGroups)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DataDir: "x", ROF: ROF{MaxGroups: 0}, Report: Report{PageWidth: 850}}
	assert.ErrorContains(t, cfg.Validate(), "rof.max_groups")

	cfg.ROF.MaxGroups = 4
	cfg.Report.PageWidth = 100
	assert.ErrorContains(t, cfg.Validate(), "page_width")
}
