package usecase

import (
	"context"
	"fmt"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

// mockConsole captura as mensagens emitidas pelos casos de uso.
type mockConsole struct {
	infos     []string
	warnings  []string
	errors    []string
	successes []string
}

func (c *mockConsole) Print(a ...interface{})                 {}
func (c *mockConsole) Printf(format string, a ...interface{}) {}
func (c *mockConsole) Println(a ...interface{})               {}
func (c *mockConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *mockConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *mockConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *mockConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}
func (c *mockConsole) Status(message string) types.StatusHandle { return &mockHandle{} }
func (c *mockConsole) ProgressWithTotal(total int) types.ProgressHandle {
	return &mockHandle{}
}
func (c *mockConsole) CreateTable() types.TableInterface { return &mockTable{} }

type mockHandle struct{}

func (*mockHandle) Update(message string) {}
func (*mockHandle) Increment()            {}
func (*mockHandle) Stop()                 {}

type mockTable struct{}

func (*mockTable) AddColumn(name string, options ...interface{}) {}
func (*mockTable) AddRow(cells ...interface{})                   {}
func (*mockTable) Render() string                                { return "" }

// mockExportRepository captura os documentos e relatórios exportados.
type mockExportRepository struct {
	docs        []entity.AccountDocument
	reportDiags []entity.Diagnostic
}

func (m *mockExportRepository) WriteMigrationDocument(docs []entity.AccountDocument, path string) (string, error) {
	m.docs = docs
	return path, nil
}

func (m *mockExportRepository) WriteReportFile(diags []entity.Diagnostic, path string) (string, error) {
	m.reportDiags = diags
	return path, nil
}

func (m *mockExportRepository) ExportDiagnosticsToCSV(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	return filename + ".csv", nil
}

func (m *mockExportRepository) ExportDiagnosticsToJSON(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	return filename + ".json", nil
}

func (m *mockExportRepository) ExportDiagnosticsToPDF(diags []entity.Diagnostic, filename, outputDir string) (string, error) {
	return filename + ".pdf", nil
}

// mockSourceRepository atende apenas ao que o check usa.
type mockSourceRepository struct {
	ids    []string
	idsErr error
}

func (m *mockSourceRepository) EnsureSourceLayout(root string) error { return nil }
func (m *mockSourceRepository) DirExists(path string) bool           { return false }
func (m *mockSourceRepository) ListAccountFiles(root string) ([]string, error) {
	return nil, nil
}
func (m *mockSourceRepository) ListAccountIDs(root string) ([]string, error) {
	return m.ids, m.idsErr
}
func (m *mockSourceRepository) LoadAccount(path string) (*entity.SourceAccount, error) {
	return nil, nil
}
func (m *mockSourceRepository) LoadPolicy(policyDir string) (*entity.SourcePolicy, error) {
	return nil, nil
}
func (m *mockSourceRepository) ListTermDirs(policyDir string) ([]string, error) {
	return nil, nil
}
func (m *mockSourceRepository) LoadTerm(termDir string) (*entity.SourceTerm, error) {
	return nil, nil
}
func (m *mockSourceRepository) ListTransactionFiles(termDir string) ([]string, error) {
	return nil, nil
}
func (m *mockSourceRepository) LoadTransaction(path string) (*entity.SourceTransaction, error) {
	return nil, nil
}

type mockRequestRepository struct {
	requests []entity.MigrationRequest
	err      error
}

func (m *mockRequestRepository) LoadRequests(csvPath string) ([]entity.MigrationRequest, error) {
	return m.requests, m.err
}

// mockPlatformRepository devolve mapeamentos (ou erros) por locator e registra
// cada busca efetuada.
type mockPlatformRepository struct {
	mappings map[string][]entity.Mapping
	errs     map[string]error
	fetched  []string
}

func (m *mockPlatformRepository) FetchMappings(ctx context.Context, settings types.PlatformSettings, locator string) ([]entity.Mapping, error) {
	m.fetched = append(m.fetched, locator)
	if err, ok := m.errs[locator]; ok {
		return nil, err
	}
	return m.mappings[locator], nil
}
