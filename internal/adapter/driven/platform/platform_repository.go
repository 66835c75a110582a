package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

const (
	defaultPageSize = 100
	// Teto defensivo contra um servidor que nunca sinaliza listCompleted.
	defaultMaxPages = 10000
)

// PlatformRepositoryImpl implementa o PlatformRepository sobre a API HTTP da plataforma.
type PlatformRepositoryImpl struct {
	client *http.Client
}

// NewPlatformRepository cria uma nova implementação do PlatformRepository.
func NewPlatformRepository() repository.PlatformRepository {
	return &PlatformRepositoryImpl{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchMappings busca todos os mapeamentos de um locator, página por página.
// A paginação envia offset/count e termina quando o servidor retorna
// listCompleted. Uma resposta sem o campo listCompleted encerra a paginação:
// tratar a ausência como "continue" deixaria o loop sem término.
func (r *PlatformRepositoryImpl) FetchMappings(ctx context.Context, settings types.PlatformSettings, locator string) ([]entity.Mapping, error) {
	endpoint := fmt.Sprintf("%s/migration/%s/migrations/%s/mappings/list",
		strings.TrimRight(settings.BaseURL, "/"), settings.TenantLocator, locator)

	pageSize := settings.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxPages := settings.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	var mappings []entity.Mapping
	offset := 0

	for page := 0; ; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("mapping listing for %s exceeded %d pages without completing", locator, maxPages)
		}

		pageData, err := r.fetchPage(ctx, endpoint, settings.AuthToken, offset, pageSize)
		if err != nil {
			return nil, err
		}

		mappings = append(mappings, pageData.Items...)

		if pageData.ListCompleted == nil || *pageData.ListCompleted {
			break
		}
		offset += pageSize
	}

	return mappings, nil
}

func (r *PlatformRepositoryImpl) fetchPage(ctx context.Context, endpoint, token string, offset, count int) (*entity.MappingPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building mapping listing request: %w", err)
	}

	query := req.URL.Query()
	query.Set("offset", strconv.Itoa(offset))
	query.Set("count", strconv.Itoa(count))
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching mapping listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("mapping listing returned status %s (offset=%d)", resp.Status, offset)
	}

	var page entity.MappingPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("error decoding mapping listing response: %w", err)
	}
	return &page, nil
}
