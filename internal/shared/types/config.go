package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	BaseURL          string   `json:"base_url" yaml:"base_url" toml:"base_url"`
	TenantLocator    string   `json:"tenant_locator" yaml:"tenant_locator" toml:"tenant_locator"`
	AuthToken        string   `json:"auth_token" yaml:"auth_token" toml:"auth_token"`
	SourceData       string   `json:"source_data" yaml:"source_data" toml:"source_data"`
	PageSize         int      `json:"page_size" yaml:"page_size" toml:"page_size"`
	MaxPages         int      `json:"max_pages" yaml:"max_pages" toml:"max_pages"`
	DefaultCreatedBy string   `json:"default_created_by" yaml:"default_created_by" toml:"default_created_by"`
	ReportName       string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType       []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir              string   `json:"dir" yaml:"dir" toml:"dir"`
}
