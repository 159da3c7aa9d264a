package usecase

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
)

// ListContractsParams contains parameters for listing contracts
type ListContractsParams struct{}

// ListContractsResult contains the deployable contracts found in the
// artifact dirs
type ListContractsResult struct {
	Contracts []ContractSummary
	Selected  string // configured contract name
}

// ContractSummary describes one indexed artifact
type ContractSummary struct {
	Name         string
	SourceName   string
	ArtifactPath string // relative to the project root when possible
}

// ListContracts is a use case for listing deployable contracts
type ListContracts struct {
	config *config.RuntimeConfig
	repo   ContractRepository
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(cfg *config.RuntimeConfig, repo ContractRepository) *ListContracts {
	return &ListContracts{
		config: cfg,
		repo:   repo,
	}
}

// Run executes the use case
func (uc *ListContracts) Run(ctx context.Context, params ListContractsParams) (*ListContractsResult, error) {
	contracts, err := uc.repo.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListContractsResult{
		Contracts: make([]ContractSummary, 0, len(contracts)),
		Selected:  uc.config.ContractName,
	}
	for _, c := range contracts {
		result.Contracts = append(result.Contracts, ContractSummary{
			Name:         c.Name,
			SourceName:   c.SourceName,
			ArtifactPath: uc.relative(c),
		})
	}
	sort.SliceStable(result.Contracts, func(a, b int) bool {
		return result.Contracts[a].Name < result.Contracts[b].Name
	})

	return result, nil
}

func (uc *ListContracts) relative(c *models.Contract) string {
	if uc.config.ProjectRoot == "" || !filepath.IsAbs(c.ArtifactPath) {
		return c.ArtifactPath
	}
	rel, err := filepath.Rel(uc.config.ProjectRoot, c.ArtifactPath)
	if err != nil {
		return c.ArtifactPath
	}
	return rel
}
