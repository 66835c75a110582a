package source

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/policyport/policy-migrate-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestEnsureSourceLayout(t *testing.T) {
	repo := NewSourceRepository()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "accounts"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "policies"), 0755))
	assert.NoError(t, repo.EnsureSourceLayout(root))

	noPolicies := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(noPolicies, "accounts"), 0755))
	err := repo.EnsureSourceLayout(noPolicies)
	assert.True(t, errors.Is(err, types.ErrPoliciesDirNotFound))

	empty := t.TempDir()
	err = repo.EnsureSourceLayout(empty)
	assert.True(t, errors.Is(err, types.ErrAccountsDirNotFound))
}

func TestListAccountIDs(t *testing.T) {
	repo := NewSourceRepository()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "accounts", "account-17.json"), "{}")
	writeFile(t, filepath.Join(root, "accounts", "account-3.json"), "{}")
	writeFile(t, filepath.Join(root, "accounts", "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, "accounts", "other.json"), "{}")

	ids, err := repo.ListAccountIDs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"17", "3"}, ids)
}

func TestListAccountFilesMissingDir(t *testing.T) {
	repo := NewSourceRepository()

	_, err := repo.ListAccountFiles(t.TempDir())
	assert.True(t, errors.Is(err, types.ErrAccountsDirNotFound))
}

func TestListTermDirsNumericOrder(t *testing.T) {
	repo := NewSourceRepository()
	policyDir := t.TempDir()

	for _, name := range []string{"10", "2", "1"} {
		require.NoError(t, os.MkdirAll(filepath.Join(policyDir, "terms", name), 0755))
	}

	dirs, err := repo.ListTermDirs(policyDir)
	require.NoError(t, err)

	var names []string
	for _, d := range dirs {
		names = append(names, filepath.Base(d))
	}
	assert.Equal(t, []string{"1", "2", "10"}, names)
}

func TestListTermDirsNonNumericName(t *testing.T) {
	repo := NewSourceRepository()
	policyDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(policyDir, "terms", "first"), 0755))

	_, err := repo.ListTermDirs(policyDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestListTermDirsMissing(t *testing.T) {
	repo := NewSourceRepository()

	_, err := repo.ListTermDirs(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing terms directory")
}

func TestListTransactionFilesNumericOrder(t *testing.T) {
	repo := NewSourceRepository()
	termDir := t.TempDir()

	for _, name := range []string{"tx_10.json", "tx_2.json", "tx_1.json"} {
		writeFile(t, filepath.Join(termDir, "transactions", name), "{}")
	}
	// Arquivos fora do padrão tx_*.json são ignorados
	writeFile(t, filepath.Join(termDir, "transactions", "summary.json"), "{}")

	files, err := repo.ListTransactionFiles(termDir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"tx_1.json", "tx_2.json", "tx_10.json"}, names)
}

func TestListTransactionFilesNonNumericSuffix(t *testing.T) {
	repo := NewSourceRepository()
	termDir := t.TempDir()
	writeFile(t, filepath.Join(termDir, "transactions", "tx_abc.json"), "{}")

	_, err := repo.ListTransactionFiles(termDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric suffix")
}

func TestLoadPolicyMissingDescriptor(t *testing.T) {
	repo := NewSourceRepository()

	_, err := repo.LoadPolicy(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing policy.json")
}

func TestLoadPolicyNumericID(t *testing.T) {
	repo := NewSourceRepository()
	policyDir := t.TempDir()
	writeFile(t, filepath.Join(policyDir, "policy.json"),
		`{"id": 1000, "productName": "home", "timezone": "UTC", "currency": "EUR"}`)

	policy, err := repo.LoadPolicy(policyDir)
	require.NoError(t, err)
	// UseNumber preserva o identificador sem arredondamento de float
	assert.Equal(t, json.Number("1000"), policy.ID)
	assert.Equal(t, "home", policy.ProductName)
}

func TestLoadAccount(t *testing.T) {
	repo := NewSourceRepository()
	root := t.TempDir()
	path := filepath.Join(root, "accounts", "account-9.json")
	writeFile(t, path,
		`{"type": "business", "fields": {"name": "Acme"}, "billing": "monthly", "created": "2020-01-02", "policies": ["policy-1"]}`)

	account, err := repo.LoadAccount(path)
	require.NoError(t, err)
	assert.Equal(t, "business", account.Type)
	assert.Equal(t, "Acme", account.Fields["name"])
	require.NotNil(t, account.Created)
	assert.Equal(t, "2020-01-02", *account.Created)
	assert.Equal(t, []string{"policy-1"}, account.Policies)
}
