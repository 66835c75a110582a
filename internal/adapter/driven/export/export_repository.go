package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Documento de Migração (convert) ---

// WriteMigrationDocument grava o array de documentos de conta no caminho
// indicado, indentado, pronto para submissão à plataforma.
func (r *ExportRepositoryImpl) WriteMigrationDocument(docs []entity.AccountDocument, path string) (string, error) {
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating migration document: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(docs); err != nil {
		return "", fmt.Errorf("error encoding migration document: %w", err)
	}

	return filepath.Abs(path)
}

// --- Relatório de Diagnósticos (check) ---

// WriteReportFile grava o relatório em texto simples, um diagnóstico por linha.
func (r *ExportRepositoryImpl) WriteReportFile(diags []entity.Diagnostic, path string) (string, error) {
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating report file: %w", err)
	}
	defer file.Close()

	for _, d := range diags {
		if _, err := fmt.Fprintln(file, d.String()); err != nil {
			return "", fmt.Errorf("error writing report file: %w", err)
		}
	}

	return filepath.Abs(path)
}

func (r *ExportRepositoryImpl) ExportDiagnosticsToCSV(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Check", "Locator", "Detail"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, d := range diags {
		record := []string{string(d.Kind), d.Locator, d.Message}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportDiagnosticsToJSON(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	type jsonDiag struct {
		Check   string `json:"check"`
		Locator string `json:"locator"`
		Detail  string `json:"detail"`
	}
	rows := make([]jsonDiag, 0, len(diags))
	for _, d := range diags {
		rows = append(rows, jsonDiag{Check: string(d.Kind), Locator: d.Locator, Detail: d.Message})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportDiagnosticsToPDF(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Post-Migration Check Report"), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	if len(diags) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(190, 6, tr("All migrations passed checks successfully."), "", "L", false)
	}

	for _, d := range diags {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, tr(fmt.Sprintf("[%s] %s", d.Kind, d.Locator)))
		pdf.Ln(6)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(3)

		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 5, tr(d.Message), "", "L", false)
		pdf.Ln(5)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Policy Migrate | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
