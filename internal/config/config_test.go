package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "headless"), dir)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	require.NotNil(t, cfg.Pagination)
	require.NotNil(t, cfg.Slider)
	require.NotNil(t, cfg.Tabs)
	assert.NotNil(t, cfg.Keys)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, 5.0, cfg.Slider.Step)
	assert.Len(t, cfg.Tabs.Items, 4)
	assert.Empty(t, cfg.Validate(), "defaults must be valid")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Slider.Step = 0.5
	cfg.Tabs.Activation = "manual"
	cfg.Keys["left"] = []string{"left", "a"}
	require.NoError(t, cfg.SaveTo(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist), "temporary file is renamed away")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, loaded.Slider.Step)
	assert.Equal(t, "manual", loaded.Tabs.Activation)
	assert.Equal(t, []string{"left", "a"}, loaded.Keys["left"])
	assert.Equal(t, cfg.Tabs.Items, loaded.Tabs.Items)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Headless demo configuration")
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nslider:\n  max: 10\n  step: 1\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Slider.Max)
	assert.Equal(t, defaultPagination(), cfg.Pagination)
	assert.Equal(t, defaultTabs(), cfg.Tabs)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"bad yaml", "version: [1\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			_, err := LoadFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, CreateDefaultConfig(path, false))
	assert.Error(t, CreateDefaultConfig(path, false), "refuses to overwrite")
	assert.NoError(t, CreateDefaultConfig(path, true))
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Pagination.PageSize = 0
	cfg.Pagination.Siblings = -1
	cfg.Slider.Min, cfg.Slider.Max, cfg.Slider.Step = 10, 5, 0
	cfg.Tabs.Orientation = "diagonal"
	cfg.Tabs.Items = append(cfg.Tabs.Items, TabItem{ID: "overview"}, TabItem{})
	cfg.Keys["left"] = nil
	cfg.Log.Level = "loud"

	var fields []string
	for _, err := range cfg.Validate() {
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		fields = append(fields, verr.Field)
	}

	assert.ElementsMatch(t, []string{
		"pagination.page_size",
		"pagination.siblings",
		"slider.max",
		"slider.step",
		"slider.default",
		"tabs.orientation",
		"tabs.items[4].id",
		"tabs.items[5].id",
		"keys.left",
		"log.level",
	}, fields)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("slider.step", "must be positive")
	assert.Equal(t, "slider.step: must be positive", err.Error())
}

func TestTabItemsFallback(t *testing.T) {
	var nilPreset *TabsPreset
	assert.Len(t, nilPreset.TabItems(), 4)
	assert.Len(t, (&TabsPreset{}).TabItems(), 4)
	assert.Len(t, (&TabsPreset{Items: []TabItem{{ID: "x"}}}).TabItems(), 1)
}
