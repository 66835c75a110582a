package source

import (
	"path/filepath"
	"testing"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequests(t *testing.T) {
	repo := NewRequestRepository()
	csvPath := filepath.Join(t.TempDir(), "requests.csv")
	writeFile(t, csvPath,
		"ignored,loc-1,Finished\n"+
			"short,row\n"+ // menos de três colunas: ignorada
			"ignored,loc-2,Pending,extra\n")

	requests, err := repo.LoadRequests(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []entity.MigrationRequest{
		{Locator: "loc-1", Status: "Finished"},
		{Locator: "loc-2", Status: "Pending"},
	}, requests)
}

func TestLoadRequestsMissingFile(t *testing.T) {
	repo := NewRequestRepository()

	_, err := repo.LoadRequests(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
