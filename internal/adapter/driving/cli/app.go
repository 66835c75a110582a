package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/policyport/policy-migrate-go/internal/application/usecase"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
	"github.com/policyport/policy-migrate-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	convertUseCase *usecase.ConvertUseCase
	checkUseCase   *usecase.CheckUseCase
	configRepo     repository.ConfigRepository
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "policy-migrate",
		Short:   "Insurance policy migration toolkit",
		Version: formattedVersion,
	}

	rootCmd.SetVersionTemplate(`{{printf "Policy Migrate version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")

	rootCmd.AddCommand(app.newConvertCommand())
	rootCmd.AddCommand(app.newCheckCommand())

	app.rootCmd = rootCmd
	return app
}

// newConvertCommand monta o subcomando convert.
func (app *CLIApp) newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input-dir> <output-file>",
		Short: "Transform the source data tree into the platform migration document",
		Args:  cobra.ExactArgs(2),
		RunE:  app.runConvertCommand,
	}

	cmd.Flags().String("default-created-by", "", "UUID recorded as defaultCreatedBy on every account document")

	return cmd
}

// newCheckCommand monta o subcomando check.
func (app *CLIApp) newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <requests-csv>",
		Short: "Verify that every expected source account appears in the migrated results",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runCheckCommand,
	}

	cmd.Flags().String("tenant-locator", "", "Tenant locator for API endpoints")
	cmd.Flags().String("auth-token", "", "API authentication token (or PM_AUTH_TOKEN)")
	cmd.Flags().String("source-data", "", "Path to the original source data directory (must contain accounts/)")
	cmd.Flags().String("base-url", "https://api.example.com", "Base URL for the platform API")
	cmd.Flags().Int("page-size", 100, "Number of mappings to fetch per page")
	cmd.Flags().Int("max-pages", 0, "Upper bound on listing pages per locator (0 = default cap)")
	cmd.Flags().StringP("output", "o", "", "Optional path to write the diagnostic report")
	cmd.Flags().StringP("report-name", "n", "", "Base name for exported report files (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Report export types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	return cmd
}

// loadConfig carrega o arquivo de configuração (quando informado) e aplica as
// sobreposições de ambiente.
func (app *CLIApp) loadConfig(cmd *cobra.Command) (*types.Config, error) {
	configFile, _ := cmd.Flags().GetString("config-file")

	config := &types.Config{}
	if configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	app.configRepo.ApplyEnvOverrides(config)
	return config, nil
}

// runConvertCommand é o ponto de entrada do subcomando convert.
func (app *CLIApp) runConvertCommand(cmd *cobra.Command, cmdArgs []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	config, err := app.loadConfig(cmd)
	if err != nil {
		return err
	}

	defaultCreatedBy, _ := cmd.Flags().GetString("default-created-by")
	if defaultCreatedBy == "" {
		defaultCreatedBy = config.DefaultCreatedBy
	}
	if defaultCreatedBy == "" {
		return fmt.Errorf("--default-created-by is required")
	}
	if _, err := uuid.Parse(defaultCreatedBy); err != nil {
		return fmt.Errorf("--default-created-by must be a valid UUID: %w", err)
	}

	args := &types.ConvertArgs{
		InputDir:         cmdArgs[0],
		OutputFile:       cmdArgs[1],
		DefaultCreatedBy: defaultCreatedBy,
	}

	ctx := context.Background()
	return app.convertUseCase.RunConvert(ctx, args)
}

// runCheckCommand é o ponto de entrada do subcomando check.
func (app *CLIApp) runCheckCommand(cmd *cobra.Command, cmdArgs []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	config, err := app.loadConfig(cmd)
	if err != nil {
		return err
	}

	args, err := app.parseCheckArgs(cmd, cmdArgs, config)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.checkUseCase.RunCheck(ctx, args)
}

// parseCheckArgs combina flags, configuração e ambiente nos argumentos do check.
func (app *CLIApp) parseCheckArgs(cmd *cobra.Command, cmdArgs []string, config *types.Config) (*types.CheckArgs, error) {
	tenantLocator, _ := cmd.Flags().GetString("tenant-locator")
	authToken, _ := cmd.Flags().GetString("auth-token")
	sourceData, _ := cmd.Flags().GetString("source-data")
	baseURL, _ := cmd.Flags().GetString("base-url")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	output, _ := cmd.Flags().GetString("output")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")

	// Flags têm precedência; configuração e ambiente preenchem o restante
	if tenantLocator == "" {
		tenantLocator = config.TenantLocator
	}
	if authToken == "" {
		authToken = config.AuthToken
	}
	if sourceData == "" {
		sourceData = config.SourceData
	}
	if !cmd.Flags().Changed("base-url") && config.BaseURL != "" {
		baseURL = config.BaseURL
	}
	if !cmd.Flags().Changed("page-size") && config.PageSize > 0 {
		pageSize = config.PageSize
	}
	if maxPages == 0 {
		maxPages = config.MaxPages
	}
	if reportName == "" {
		reportName = config.ReportName
	}
	if !cmd.Flags().Changed("report-type") && len(config.ReportType) > 0 {
		reportType = config.ReportType
	}
	if dir == "" {
		dir = config.Dir
	}

	if tenantLocator == "" {
		return nil, fmt.Errorf("--tenant-locator is required")
	}
	if authToken == "" {
		return nil, fmt.Errorf("--auth-token is required (flag, config file, or PM_AUTH_TOKEN)")
	}
	if sourceData == "" {
		return nil, fmt.Errorf("--source-data is required")
	}

	return &types.CheckArgs{
		CSVFile:       cmdArgs[0],
		TenantLocator: tenantLocator,
		AuthToken:     authToken,
		SourceData:    sourceData,
		BaseURL:       baseURL,
		PageSize:      pageSize,
		MaxPages:      maxPages,
		Output:        output,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
	}, nil
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetConvertUseCase sets the convert use case for the CLI app.
func (app *CLIApp) SetConvertUseCase(useCase *usecase.ConvertUseCase) {
	app.convertUseCase = useCase
}

// SetCheckUseCase sets the check use case for the CLI app.
func (app *CLIApp) SetCheckUseCase(useCase *usecase.CheckUseCase) {
	app.checkUseCase = useCase
}

// SetConfigRepository sets the config repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}
