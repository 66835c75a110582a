package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/policyport/policy-migrate-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
base_url = "https://platform.example.com"
tenant_locator = "tenant-1"
page_size = 50
report_type = ["csv", "pdf"]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://platform.example.com", cfg.BaseURL)
	assert.Equal(t, "tenant-1", cfg.TenantLocator)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
base_url: https://platform.example.com
source_data: /data/source
max_pages: 500
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://platform.example.com", cfg.BaseURL)
	assert.Equal(t, "/data/source", cfg.SourceData)
	assert.Equal(t, 500, cfg.MaxPages)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"auth_token": "tok", "page_size": 25}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.AuthToken)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.ini", "a=b")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PM_AUTH_TOKEN", "env-token")
	t.Setenv("PM_PAGE_SIZE", "250")

	cfg := &types.Config{AuthToken: "file-token", PageSize: 100, BaseURL: "https://from-file"}
	repo := NewConfigRepository()
	repo.ApplyEnvOverrides(cfg)

	// O ambiente tem precedência sobre o arquivo
	assert.Equal(t, "env-token", cfg.AuthToken)
	assert.Equal(t, 250, cfg.PageSize)
	// Valores sem variável correspondente ficam intactos
	assert.Equal(t, "https://from-file", cfg.BaseURL)
}
