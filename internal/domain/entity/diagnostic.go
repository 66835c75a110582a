package entity

import "fmt"

// DiagnosticKind tags a diagnostic line in the check report.
type DiagnosticKind string

const (
	// DiagnosticStatus flags a request whose status kept the mappings check
	// from running. Informational, not a migration failure.
	DiagnosticStatus DiagnosticKind = "Status"
	// DiagnosticMappings flags a failed fetch or missing accounts.
	DiagnosticMappings DiagnosticKind = "Mappings"
)

// Diagnostic is one ordered entry of the post-migration check report.
type Diagnostic struct {
	Kind    DiagnosticKind
	Locator string
	Message string
}

// String renders the diagnostic as a report line, e.g.
// "[Mappings] Locator abc missing accounts: 2, 7".
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}
