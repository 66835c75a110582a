package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

const (
	accountsDirName     = "accounts"
	policiesDirName     = "policies"
	accountFilePrefix   = "account-"
	jsonFileSuffix      = ".json"
	termsDirName        = "terms"
	transactionsDirName = "transactions"
	transactionPrefix   = "tx_"
)

// SourceRepositoryImpl implementa o SourceRepository sobre a árvore de dados no disco.
type SourceRepositoryImpl struct{}

// NewSourceRepository cria uma nova implementação do SourceRepository.
func NewSourceRepository() repository.SourceRepository {
	return &SourceRepositoryImpl{}
}

// EnsureSourceLayout verifica se a raiz contém os diretórios accounts/ e policies/.
func (r *SourceRepositoryImpl) EnsureSourceLayout(root string) error {
	if err := ensureDir(filepath.Join(root, accountsDirName)); err != nil {
		return fmt.Errorf("%w: %s", types.ErrAccountsDirNotFound, filepath.Join(root, accountsDirName))
	}
	if err := ensureDir(filepath.Join(root, policiesDirName)); err != nil {
		return fmt.Errorf("%w: %s", types.ErrPoliciesDirNotFound, filepath.Join(root, policiesDirName))
	}
	return nil
}

// DirExists informa se o caminho existe e é um diretório.
func (r *SourceRepositoryImpl) DirExists(path string) bool {
	return ensureDir(path) == nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// ListAccountFiles lista os arquivos account-*.json em ordem lexical.
func (r *SourceRepositoryImpl) ListAccountFiles(root string) ([]string, error) {
	accountsDir := filepath.Join(root, accountsDirName)
	if err := ensureDir(accountsDir); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrAccountsDirNotFound, accountsDir)
	}

	entries, err := os.ReadDir(accountsDir)
	if err != nil {
		return nil, fmt.Errorf("error reading accounts directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, accountFilePrefix) && strings.HasSuffix(name, jsonFileSuffix) {
			files = append(files, filepath.Join(accountsDir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ListAccountIDs extrai os identificadores esperados dos nomes account-<id>.json.
func (r *SourceRepositoryImpl) ListAccountIDs(root string) ([]string, error) {
	files, err := r.ListAccountFiles(root)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		name := filepath.Base(f)
		id := strings.TrimSuffix(strings.TrimPrefix(name, accountFilePrefix), jsonFileSuffix)
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadAccount carrega um registro de conta do disco.
func (r *SourceRepositoryImpl) LoadAccount(path string) (*entity.SourceAccount, error) {
	var account entity.SourceAccount
	if err := decodeJSONFile(path, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// LoadPolicy carrega o descritor policy.json de um diretório de apólice.
func (r *SourceRepositoryImpl) LoadPolicy(policyDir string) (*entity.SourcePolicy, error) {
	path := filepath.Join(policyDir, "policy.json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("missing policy.json in %s", policyDir)
	}

	var policy entity.SourcePolicy
	if err := decodeJSONFile(path, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// ListTermDirs lista os subdiretórios de terms/ ordenados pelo valor numérico
// do nome. Um nome não numérico é um erro de dados, nunca ordem lexical.
func (r *SourceRepositoryImpl) ListTermDirs(policyDir string) ([]string, error) {
	termsDir := filepath.Join(policyDir, termsDirName)
	entries, err := os.ReadDir(termsDir)
	if err != nil {
		return nil, fmt.Errorf("missing terms directory in %s", policyDir)
	}

	type numbered struct {
		n    int
		path string
	}
	var dirs []numbered
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, err := strconv.Atoi(e.Name())
		if err != nil {
			return nil, fmt.Errorf("term directory %q in %s is not numeric", e.Name(), termsDir)
		}
		dirs = append(dirs, numbered{n: n, path: filepath.Join(termsDir, e.Name())})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].n < dirs[j].n })

	paths := make([]string, 0, len(dirs))
	for _, d := range dirs {
		paths = append(paths, d.path)
	}
	return paths, nil
}

// LoadTerm carrega o descritor term.json de um diretório de vigência.
func (r *SourceRepositoryImpl) LoadTerm(termDir string) (*entity.SourceTerm, error) {
	path := filepath.Join(termDir, "term.json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("missing term.json in %s", termDir)
	}

	var term entity.SourceTerm
	if err := decodeJSONFile(path, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

// ListTransactionFiles lista os arquivos tx_<n>.json ordenados pelo sufixo
// numérico. Arquivos fora do padrão tx_*.json são ignorados.
func (r *SourceRepositoryImpl) ListTransactionFiles(termDir string) ([]string, error) {
	txDir := filepath.Join(termDir, transactionsDirName)
	entries, err := os.ReadDir(txDir)
	if err != nil {
		return nil, fmt.Errorf("missing transactions directory in %s", termDir)
	}

	type numbered struct {
		n    int
		path string
	}
	var files []numbered
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, transactionPrefix) || !strings.HasSuffix(name, jsonFileSuffix) {
			continue
		}
		suffix := strings.TrimSuffix(strings.TrimPrefix(name, transactionPrefix), jsonFileSuffix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return nil, fmt.Errorf("transaction file %q in %s has a non-numeric suffix", name, txDir)
		}
		files = append(files, numbered{n: n, path: filepath.Join(txDir, name)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}
	return paths, nil
}

// LoadTransaction carrega um registro de transação do disco.
func (r *SourceRepositoryImpl) LoadTransaction(path string) (*entity.SourceTransaction, error) {
	var tx entity.SourceTransaction
	if err := decodeJSONFile(path, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// decodeJSONFile lê e decodifica um arquivo JSON. UseNumber preserva
// identificadores numéricos grandes sem passar por float64.
func decodeJSONFile(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}
