package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// ApplyEnvOverrides sobrepõe valores do ambiente à configuração carregada,
// mapeando PM_AUTH_TOKEN, PM_BASE_URL, PM_TENANT_LOCATOR e PM_PAGE_SIZE.
// O token de autenticação nunca precisa ficar em arquivo.
func (r *ConfigRepositoryImpl) ApplyEnvOverrides(config *types.Config) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("PM")

	v.BindEnv("auth_token")
	v.BindEnv("base_url")
	v.BindEnv("tenant_locator")
	v.BindEnv("page_size")
	v.BindEnv("max_pages")

	if v.IsSet("auth_token") {
		config.AuthToken = v.GetString("auth_token")
	}
	if v.IsSet("base_url") {
		config.BaseURL = v.GetString("base_url")
	}
	if v.IsSet("tenant_locator") {
		config.TenantLocator = v.GetString("tenant_locator")
	}
	if v.IsSet("page_size") {
		config.PageSize = v.GetInt("page_size")
	}
	if v.IsSet("max_pages") {
		config.MaxPages = v.GetInt("max_pages")
	}
}
