package signers

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// PrimaryAccountName is always ordered first when configured
const PrimaryAccountName = "deployer"

// Provider loads signers from the configured accounts
type Provider struct {
	accounts map[string]config.AccountConfig
}

// NewProvider creates a new signer provider
func NewProvider(cfg *config.RuntimeConfig) *Provider {
	return &Provider{
		accounts: cfg.Accounts,
	}
}

// Signers returns every configured signer, "deployer" first and the rest
// sorted by name. Any account that fails to load fails the whole call.
func (p *Provider) Signers(ctx context.Context) ([]*models.Signer, error) {
	names := orderedNames(p.accounts)

	signers := make([]*models.Signer, 0, len(names))
	for _, name := range names {
		signer, err := loadSigner(name, p.accounts[name])
		if err != nil {
			return nil, fmt.Errorf("account '%s': %w", name, err)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

func orderedNames(accounts map[string]config.AccountConfig) []string {
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == PrimaryAccountName || names[j] == PrimaryAccountName {
			return names[i] == PrimaryAccountName
		}
		return names[i] < names[j]
	})
	return names
}

func loadSigner(name string, acct config.AccountConfig) (*models.Signer, error) {
	var (
		key *ecdsa.PrivateKey
		err error
	)

	switch acct.Type {
	case config.AccountTypePrivateKey, "":
		key, err = parsePrivateKey(acct.PrivateKey)
	case config.AccountTypeKeystore:
		key, err = decryptKeystore(acct.Keystore, acct.Password)
	default:
		return nil, fmt.Errorf("unsupported account type: %s", acct.Type)
	}
	if err != nil {
		return nil, err
	}

	address := crypto.PubkeyToAddress(key.PublicKey)
	if acct.Address != "" {
		if !common.IsHexAddress(acct.Address) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, acct.Address)
		}
		if common.HexToAddress(acct.Address) != address {
			return nil, fmt.Errorf("key address %s does not match configured address %s", address.Hex(), acct.Address)
		}
	}

	return &models.Signer{
		Name:       name,
		Address:    address,
		PrivateKey: key,
	}, nil
}

func parsePrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	privateKeyHex = strings.TrimSpace(privateKeyHex)
	if privateKeyHex == "" {
		return nil, fmt.Errorf("private key is empty")
	}

	// Remove 0x prefix if present
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	privateKey, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create private key: %w", err)
	}
	return privateKey, nil
}

func decryptKeystore(path, password string) (*ecdsa.PrivateKey, error) {
	if path == "" {
		return nil, fmt.Errorf("keystore path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}
	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore %s: %w", path, err)
	}
	return key.PrivateKey, nil
}

// Ensure the adapter implements the interface
var _ usecase.SignerProvider = (*Provider)(nil)
