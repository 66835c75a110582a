package types

// ConvertArgs represents the command-line arguments of the convert command.
type ConvertArgs struct {
	ConfigFile       string
	InputDir         string
	OutputFile       string
	DefaultCreatedBy string
}

// CheckArgs represents the command-line arguments of the check command.
type CheckArgs struct {
	ConfigFile    string
	CSVFile       string
	TenantLocator string
	AuthToken     string
	SourceData    string
	BaseURL       string
	PageSize      int
	MaxPages      int
	Output        string
	ReportName    string
	ReportType    []string
	Dir           string
}

// Platform returns the platform connection settings carried by the args.
func (a *CheckArgs) Platform() PlatformSettings {
	return PlatformSettings{
		BaseURL:       a.BaseURL,
		TenantLocator: a.TenantLocator,
		AuthToken:     a.AuthToken,
		PageSize:      a.PageSize,
		MaxPages:      a.MaxPages,
	}
}

// PlatformSettings groups everything the mapping listing client needs.
type PlatformSettings struct {
	BaseURL       string
	TenantLocator string
	AuthToken     string
	PageSize      int
	MaxPages      int
}
