package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

const statusFinished = "finished"

// CheckUseCase handles the post-migration completeness checks.
type CheckUseCase struct {
	sourceRepo   repository.SourceRepository
	requestRepo  repository.RequestRepository
	platformRepo repository.PlatformRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
}

// NewCheckUseCase creates a new check use case.
func NewCheckUseCase(
	sourceRepo repository.SourceRepository,
	requestRepo repository.RequestRepository,
	platformRepo repository.PlatformRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *CheckUseCase {
	return &CheckUseCase{
		sourceRepo:   sourceRepo,
		requestRepo:  requestRepo,
		platformRepo: platformRepo,
		exportRepo:   exportRepo,
		console:      console,
	}
}

// RunChecks produz os diagnósticos na ordem das linhas do CSV. Erros locais a
// um locator viram diagnósticos e o lote continua; a ausência do CSV ou do
// diretório accounts/ aborta a execução.
func (uc *CheckUseCase) RunChecks(ctx context.Context, args *types.CheckArgs) ([]entity.Diagnostic, error) {
	requests, err := uc.requestRepo.LoadRequests(args.CSVFile)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, types.ErrNoRequestsFound
	}

	// O diretório accounts/ é compartilhado entre locators: localizado uma
	// vez na partida, não por locator.
	expected, err := uc.sourceRepo.ListAccountIDs(args.SourceData)
	if err != nil {
		return nil, err
	}

	settings := args.Platform()
	var diags []entity.Diagnostic

	for _, req := range requests {
		if !strings.EqualFold(req.Status, statusFinished) {
			diags = append(diags, entity.Diagnostic{
				Kind:    entity.DiagnosticStatus,
				Locator: req.Locator,
				Message: fmt.Sprintf("Locator %s has status '%s', skipping mappings check.", req.Locator, req.Status),
			})
			continue
		}

		mappings, err := uc.platformRepo.FetchMappings(ctx, settings, req.Locator)
		if err != nil {
			diags = append(diags, entity.Diagnostic{
				Kind:    entity.DiagnosticMappings,
				Locator: req.Locator,
				Message: fmt.Sprintf("Failed to fetch mappings for %s: %v", req.Locator, err),
			})
			continue
		}

		migrated := make(map[string]struct{}, len(mappings))
		for _, m := range mappings {
			migrated[m.OriginalAccountID] = struct{}{}
		}

		var missing []string
		for _, id := range expected {
			if _, ok := migrated[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			diags = append(diags, entity.Diagnostic{
				Kind:    entity.DiagnosticMappings,
				Locator: req.Locator,
				Message: fmt.Sprintf("Locator %s missing accounts: %s", req.Locator, strings.Join(missing, ", ")),
			})
		}
	}

	return diags, nil
}

// RunCheck executa as verificações, exibe o resumo e exporta o relatório.
func (uc *CheckUseCase) RunCheck(ctx context.Context, args *types.CheckArgs) error {
	status := uc.console.Status("Running post-migration checks...")
	diags, err := uc.RunChecks(ctx, args)
	status.Stop()
	if err != nil {
		return err
	}

	uc.displaySummary(diags)

	if args.Output != "" {
		reportPath, err := uc.exportRepo.WriteReportFile(diags, args.Output)
		if err != nil {
			uc.console.LogError("Failed to write report file: %s", err)
		} else {
			uc.console.LogSuccess("Results written to %s", reportPath)
		}
	}

	// Exporta o relatório nos formatos adicionais, se solicitado
	if args.ReportName != "" {
		for _, reportType := range args.ReportType {
			switch reportType {
			case "csv":
				csvPath, err := uc.exportRepo.ExportDiagnosticsToCSV(diags, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export check report to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported check report to CSV: %s", csvPath)
				}
			case "json":
				jsonPath, err := uc.exportRepo.ExportDiagnosticsToJSON(diags, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export check report to JSON: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported check report to JSON: %s", jsonPath)
				}
			case "pdf":
				pdfPath, err := uc.exportRepo.ExportDiagnosticsToPDF(diags, args.ReportName, args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export check report to PDF: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported check report to PDF: %s", pdfPath)
				}
			}
		}
	}

	return nil
}

// displaySummary exibe o resultado final das verificações.
func (uc *CheckUseCase) displaySummary(diags []entity.Diagnostic) {
	if len(diags) == 0 {
		uc.console.LogSuccess("All migrations passed checks successfully.")
		return
	}

	uc.console.LogError("Errors detected during post-migration checks:")

	table := uc.console.CreateTable()
	table.AddColumn("Check")
	table.AddColumn("Locator")
	table.AddColumn("Detail")
	for _, d := range diags {
		table.AddRow(string(d.Kind), d.Locator, d.Message)
	}
	uc.console.Print(table.Render())
}
