package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
)

// RequestRepositoryImpl implementa o RequestRepository sobre o CSV de requisições.
type RequestRepositoryImpl struct{}

// NewRequestRepository cria uma nova implementação do RequestRepository.
func NewRequestRepository() repository.RequestRepository {
	return &RequestRepositoryImpl{}
}

// LoadRequests carrega locators e statuses do CSV de requisições de migração.
// Linhas com menos de três colunas são ignoradas silenciosamente; a ordem das
// linhas é preservada.
func (r *RequestRepositoryImpl) LoadRequests(csvPath string) ([]entity.MigrationRequest, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("error opening requests CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var requests []entity.MigrationRequest
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading requests CSV: %w", err)
		}
		if len(row) < 3 {
			continue
		}
		requests = append(requests, entity.MigrationRequest{
			Locator: row[1],
			Status:  row[2],
		})
	}
	return requests, nil
}
