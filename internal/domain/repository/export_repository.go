package repository

import (
	"github.com/policyport/policy-migrate-go/internal/domain/entity"
)

type ExportRepository interface {
	// Migration document produced by convert
	WriteMigrationDocument(docs []entity.AccountDocument, path string) (string, error)

	// Diagnostic report produced by check
	WriteReportFile(diags []entity.Diagnostic, path string) (string, error)
	ExportDiagnosticsToCSV(diags []entity.Diagnostic, filename string, outputDir string) (string, error)
	ExportDiagnosticsToJSON(diags []entity.Diagnostic, filename string, outputDir string) (string, error)
	ExportDiagnosticsToPDF(diags []entity.Diagnostic, filename string, outputDir string) (string, error)
}
