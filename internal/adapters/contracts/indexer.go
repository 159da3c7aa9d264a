package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

const maxSuggestions = 3

// Indexer discovers compiled artifacts in Hardhat (artifacts/) and Foundry
// (out/) build trees and resolves contract names to them
type Indexer struct {
	artifactDirs  []string
	log           *slog.Logger
	contracts     map[string]*models.Contract   // key: "sourceName:contractName"
	contractNames map[string][]*models.Contract // key: contract name
	dirIndex      map[string]int                // key: "sourceName:contractName", position in artifactDirs
	indexed       bool
	mu            sync.RWMutex
}

// NewIndexer creates a new contract indexer
func NewIndexer(cfg *config.RuntimeConfig, log *slog.Logger) *Indexer {
	return &Indexer{
		artifactDirs:  cfg.ArtifactDirs,
		log:           log,
		contracts:     make(map[string]*models.Contract),
		contractNames: make(map[string][]*models.Contract),
		dirIndex:      make(map[string]int),
	}
}

// Index walks all artifact directories. Missing directories are skipped.
func (i *Indexer) Index() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.contracts = make(map[string]*models.Contract)
	i.contractNames = make(map[string][]*models.Contract)
	i.dirIndex = make(map[string]int)

	for idx, dir := range i.artifactDirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			i.log.Debug("skipping artifact directory", "dir", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" || d.Name() == "cache" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}
			return i.processArtifact(path, idx)
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", dir, err)
		}
	}

	i.indexed = true
	i.log.Debug("indexed artifacts", "contracts", len(i.contracts))
	return nil
}

// processArtifact processes a single artifact file
func (i *Indexer) processArtifact(artifactPath string, dirIdx int) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		// Skip files that are not artifacts
		return nil
	}

	// Skip interfaces and abstract contracts
	if artifact.Bytecode.Empty() || len(artifact.ABI) == 0 {
		return nil
	}

	contractName, sourceName := artifact.ContractName, artifact.SourceName
	if contractName == "" {
		// Foundry: take it from the compilation target
		for source, name := range artifact.Metadata.Settings.CompilationTarget {
			sourceName, contractName = source, name
		}
	}
	if contractName == "" {
		// Fall back to the out/<File>.sol/<Name>.json layout
		contractName = strings.TrimSuffix(filepath.Base(artifactPath), ".json")
		sourceName = filepath.Base(filepath.Dir(artifactPath))
	}

	contract := &models.Contract{
		Name:         contractName,
		SourceName:   sourceName,
		ArtifactPath: artifactPath,
		Artifact:     &artifact,
	}

	key := contractKey(sourceName, contractName)
	if _, exists := i.contracts[key]; exists {
		// The same source:name in a later artifact dir is shadowed
		return nil
	}
	i.contracts[key] = contract
	i.dirIndex[key] = dirIdx
	i.contractNames[contractName] = append(i.contractNames[contractName], contract)
	return nil
}

// GetContract resolves a contract query to exactly one artifact
func (i *Indexer) GetContract(ctx context.Context, query domain.ContractQuery) (*models.Contract, error) {
	if err := i.ensureIndexed(); err != nil {
		return nil, err
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	if query.SourceName != "" {
		if contract, ok := i.contracts[contractKey(query.SourceName, query.Name)]; ok {
			return contract, nil
		}
		// Allow a suffix of the source path, e.g. "PrivateNFT.sol:PrivateNFT"
		var matches []*models.Contract
		for _, c := range i.contractNames[query.Name] {
			if strings.HasSuffix(c.SourceName, query.SourceName) {
				matches = append(matches, c)
			}
		}
		return i.single(query, matches)
	}

	return i.single(query, i.contractNames[query.Name])
}

// ListContracts returns every indexed contract sorted by name
func (i *Indexer) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := i.ensureIndexed(); err != nil {
		return nil, err
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	contracts := make([]*models.Contract, 0, len(i.contracts))
	for _, c := range i.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(a, b int) bool {
		return contractKey(contracts[a].SourceName, contracts[a].Name) < contractKey(contracts[b].SourceName, contracts[b].Name)
	})
	return contracts, nil
}

func (i *Indexer) single(query domain.ContractQuery, matches []*models.Contract) (*models.Contract, error) {
	switch len(matches) {
	case 0:
		return nil, domain.ArtifactNotFoundErr{
			Query:       query,
			SearchDirs:  i.artifactDirs,
			Suggestions: i.suggest(query.Name),
		}
	case 1:
		return matches[0], nil
	default:
		// Across build trees the earlier artifact dir wins, so a Hardhat
		// and a Foundry build of the same contract do not conflict
		if preferred := i.fromFirstDir(matches); len(preferred) == 1 {
			i.log.Debug("preferring artifact from earlier directory",
				"contract", query.String(), "artifact", preferred[0].ArtifactPath)
			return preferred[0], nil
		}
		refs := make([]string, 0, len(matches))
		for _, m := range matches {
			refs = append(refs, contractKey(m.SourceName, m.Name))
		}
		return nil, domain.AmbiguousContractErr{Query: query, Matches: refs}
	}
}

// fromFirstDir keeps the matches found in the earliest artifact dir
func (i *Indexer) fromFirstDir(matches []*models.Contract) []*models.Contract {
	first := -1
	var preferred []*models.Contract
	for _, m := range matches {
		idx := i.dirIndex[contractKey(m.SourceName, m.Name)]
		switch {
		case first == -1 || idx < first:
			first = idx
			preferred = []*models.Contract{m}
		case idx == first:
			preferred = append(preferred, m)
		}
	}
	return preferred
}

// suggest returns contract names close to name; callers hold the read lock
func (i *Indexer) suggest(name string) []string {
	names := make([]string, 0, len(i.contractNames))
	for n := range i.contractNames {
		names = append(names, n)
	}
	sort.Strings(names)

	var suggestions []string
	for _, n := range names {
		if strings.EqualFold(n, name) {
			suggestions = append(suggestions, n)
		}
	}
	for _, match := range fuzzy.Find(name, names) {
		if len(suggestions) >= maxSuggestions {
			break
		}
		if !lo.Contains(suggestions, match.Str) {
			suggestions = append(suggestions, match.Str)
		}
	}
	return suggestions
}

func (i *Indexer) ensureIndexed() error {
	i.mu.RLock()
	indexed := i.indexed
	i.mu.RUnlock()
	if indexed {
		return nil
	}
	return i.Index()
}

func contractKey(sourceName, contractName string) string {
	return sourceName + ":" + contractName
}

// Ensure the adapter implements the interface
var _ usecase.ContractRepository = (*Indexer)(nil)
