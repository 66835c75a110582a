package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/policyport/policy-migrate-go/internal/domain/entity"
	"github.com/policyport/policy-migrate-go/internal/domain/repository"
	"github.com/policyport/policy-migrate-go/internal/shared/types"
)

// ConvertUseCase handles the source-tree to migration-document conversion.
type ConvertUseCase struct {
	sourceRepo repository.SourceRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewConvertUseCase creates a new convert use case.
func NewConvertUseCase(
	sourceRepo repository.SourceRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ConvertUseCase {
	return &ConvertUseCase{
		sourceRepo: sourceRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// RunConvert executa a conversão completa: percorre as contas da árvore de
// origem, transforma cada uma e grava o documento de migração. Um erro local
// a uma conta pula aquela conta e segue; a ausência dos diretórios raiz
// aborta a execução.
func (uc *ConvertUseCase) RunConvert(ctx context.Context, args *types.ConvertArgs) error {
	if err := uc.sourceRepo.EnsureSourceLayout(args.InputDir); err != nil {
		return err
	}

	accountFiles, err := uc.sourceRepo.ListAccountFiles(args.InputDir)
	if err != nil {
		return err
	}
	policiesDir := filepath.Join(args.InputDir, "policies")

	docs := make([]entity.AccountDocument, 0, len(accountFiles))
	progress := uc.console.ProgressWithTotal(len(accountFiles))
	for _, accountFile := range accountFiles {
		doc, err := uc.TransformAccount(accountFile, policiesDir, args.DefaultCreatedBy)
		if err != nil {
			uc.console.LogWarning("Skipping account %s: %v", filepath.Base(accountFile), err)
			progress.Increment()
			continue
		}
		docs = append(docs, *doc)
		progress.Increment()
	}
	progress.Stop()

	outputPath, err := uc.exportRepo.WriteMigrationDocument(docs, args.OutputFile)
	if err != nil {
		return err
	}

	uc.console.LogSuccess("Wrote %d account records to %s", len(docs), outputPath)
	return nil
}

// TransformAccount converte um arquivo de conta em um documento de migração,
// incorporando as apólices referenciadas. Referências mal formadas ou
// apontando para diretórios inexistentes são avisos e a apólice é omitida;
// um descritor ausente em uma apólice resolvida é fatal para a conta.
func (uc *ConvertUseCase) TransformAccount(accountPath, policiesDir, defaultCreatedBy string) (*entity.AccountDocument, error) {
	raw, err := uc.sourceRepo.LoadAccount(accountPath)
	if err != nil {
		return nil, err
	}

	// Extrai o identificador do nome account-<id>.json
	stem := strings.TrimSuffix(filepath.Base(accountPath), filepath.Ext(accountPath))
	_, accountID, found := strings.Cut(stem, "-")
	if !found {
		return nil, fmt.Errorf("invalid account filename: %s", filepath.Base(accountPath))
	}

	fields := raw.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	policies := make([]entity.PolicyDocument, 0, len(raw.Policies))
	for _, ref := range raw.Policies {
		// ref no formato 'policy-1000'
		parts := strings.SplitN(ref, "-", 2)
		if len(parts) != 2 {
			uc.console.LogWarning("Unrecognized policy ref '%s' in %s", ref, accountPath)
			continue
		}
		policyDir := filepath.Join(policiesDir, "policy-"+parts[1])
		if !uc.sourceRepo.DirExists(policyDir) {
			uc.console.LogWarning("Missing policy directory %s", policyDir)
			continue
		}

		policyDoc, err := uc.transformPolicy(policyDir)
		if err != nil {
			return nil, err
		}
		policies = append(policies, *policyDoc)
	}

	return &entity.AccountDocument{
		AccountData: entity.AccountData{
			ID:           accountID,
			AccountType:  raw.Type,
			Data:         fields,
			BillingLevel: raw.Billing,
			CreatedAt:    raw.Created,
		},
		DefaultCreatedBy: defaultCreatedBy,
		Policies:         policies,
	}, nil
}

// transformPolicy converte um diretório de apólice, com termos e transações
// aninhados, para o formato de migração.
func (uc *ConvertUseCase) transformPolicy(policyDir string) (*entity.PolicyDocument, error) {
	raw, err := uc.sourceRepo.LoadPolicy(policyDir)
	if err != nil {
		return nil, err
	}

	// Uma única identidade raiz por apólice, compartilhada por todos os
	// segmentos, nunca gerada por transação.
	root := entity.RootElement{
		ID:          uuid.NewString(),
		ElementType: raw.ProductName,
	}

	termDirs, err := uc.sourceRepo.ListTermDirs(policyDir)
	if err != nil {
		return nil, err
	}

	terms := make([]entity.TermDocument, 0, len(termDirs))
	var createdDates []string

	for _, termDir := range termDirs {
		rawTerm, err := uc.sourceRepo.LoadTerm(termDir)
		if err != nil {
			return nil, err
		}

		txFiles, err := uc.sourceRepo.ListTransactionFiles(termDir)
		if err != nil {
			return nil, err
		}

		transactions := make([]entity.TransactionDocument, 0, len(txFiles))
		for _, txFile := range txFiles {
			rawTx, err := uc.sourceRepo.LoadTransaction(txFile)
			if err != nil {
				return nil, err
			}

			// Coleta para o createdAt da apólice
			if rawTx.Created != nil && *rawTx.Created != "" {
				createdDates = append(createdDates, *rawTx.Created)
			}

			segmentType := entity.SegmentTypeCoverage
			if rawTx.Type == entity.TransactionTypeCancellation {
				segmentType = entity.SegmentTypeGap
			}

			transactions = append(transactions, entity.TransactionDocument{
				TransactionType: rawTx.Type,
				CreatedAt:       rawTx.Created,
				IssuedTime:      rawTx.Issued,
				Segment: entity.Segment{
					RootElement: root,
					SegmentType: segmentType,
					StartTime:   rawTx.Start,
				},
			})
		}

		terms = append(terms, entity.TermDocument{
			StartTime:    rawTerm.Start,
			EndTime:      rawTerm.End,
			Transactions: transactions,
		})
	}

	return &entity.PolicyDocument{
		ID:            fmt.Sprintf("policy_%v", raw.ID),
		ProductName:   raw.ProductName,
		Timezone:      raw.Timezone,
		Currency:      raw.Currency,
		BillingLevel:  entity.BillingLevelInherit,
		DurationBasis: entity.DurationBasisMonths,
		CreatedAt:     earliestDate(createdDates),
		Terms:         terms,
	}, nil
}

// earliestDate retorna a menor data entre as coletadas, ou nil quando nenhuma
// transação informa createdAt. Datas ISO-8601 ordenam lexicalmente.
func earliestDate(dates []string) *string {
	if len(dates) == 0 {
		return nil
	}
	earliest := dates[0]
	for _, d := range dates[1:] {
		if d < earliest {
			earliest = d
		}
	}
	return &earliest
}
