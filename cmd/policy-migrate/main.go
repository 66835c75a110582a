package main

import (
	"fmt"
	"os"

	"github.com/policyport/policy-migrate-go/internal/adapter/driven/config"
	"github.com/policyport/policy-migrate-go/internal/adapter/driven/export"
	"github.com/policyport/policy-migrate-go/internal/adapter/driven/platform"
	"github.com/policyport/policy-migrate-go/internal/adapter/driven/source"
	"github.com/policyport/policy-migrate-go/internal/adapter/driving/cli"
	"github.com/policyport/policy-migrate-go/internal/application/usecase"
	"github.com/policyport/policy-migrate-go/pkg/console"
	"github.com/policyport/policy-migrate-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sourceRepo := source.NewSourceRepository()
	requestRepo := source.NewRequestRepository()
	platformRepo := platform.NewPlatformRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa os casos de uso
	convertUseCase := usecase.NewConvertUseCase(sourceRepo, exportRepo, consoleImpl)
	checkUseCase := usecase.NewCheckUseCase(sourceRepo, requestRepo, platformRepo, exportRepo, consoleImpl)

	// Define os casos de uso no aplicativo CLI
	app.SetConvertUseCase(convertUseCase)
	app.SetCheckUseCase(checkUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
