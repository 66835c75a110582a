package repository

import (
	"context"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

// PlatformRepository defines the interface for the migration platform API.
type PlatformRepository interface {
	// FetchMappings retrieves every mapping produced for one migration
	// locator, following the offset/count pagination until the server
	// asserts completion. A transport or decode failure aborts the whole
	// fetch; no partial page set is returned.
	FetchMappings(ctx context.Context, settings types.PlatformSettings, locator string) ([]entity.Mapping, error)
}
