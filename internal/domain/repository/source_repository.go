package repository

import (
	"github.com/policyport/policy-migrate-go/internal/domain/entity"
)

// SourceRepository defines the interface for reading the hierarchical source
// tree. Listing methods return paths already ordered the way the transformer
// consumes them: account files lexically, terms and transactions by the
// numeric value embedded in their names ("2" before "10").
type SourceRepository interface {
	// Layout
	EnsureSourceLayout(root string) error
	DirExists(path string) bool

	// Account Operations
	ListAccountFiles(root string) ([]string, error)
	ListAccountIDs(root string) ([]string, error)
	LoadAccount(path string) (*entity.SourceAccount, error)

	// Policy Operations
	LoadPolicy(policyDir string) (*entity.SourcePolicy, error)
	ListTermDirs(policyDir string) ([]string, error)
	LoadTerm(termDir string) (*entity.SourceTerm, error)
	ListTransactionFiles(termDir string) ([]string, error)
	LoadTransaction(path string) (*entity.SourceTransaction, error)
}

// RequestRepository defines the interface for the migration request index.
type RequestRepository interface {
	LoadRequests(csvPath string) ([]entity.MigrationRequest, error)
}
