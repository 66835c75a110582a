package entity

// MigrationRequest is one submitted migration job, loaded from the requests
// CSV (column 2 = locator, column 3 = status).
type MigrationRequest struct {
	Locator string
	Status  string
}

// Mapping is one source-to-target correspondence produced by the platform.
// The listing returns more fields per item; only the original account
// identifier matters for the completeness check.
type Mapping struct {
	OriginalAccountID string `json:"originalAccountId"`
}

// MappingPage is one page of the remote mapping listing. ListCompleted is a
// pointer so a response that omits the flag can be told apart from an
// explicit false.
type MappingPage struct {
	Items         []Mapping `json:"items"`
	ListCompleted *bool     `json:"listCompleted"`
}
