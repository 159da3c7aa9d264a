package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

// DeployFileName is the optional project configuration file
const DeployFileName = "deploy.toml"

// loadDeployFile loads and parses deploy.toml if it exists.
// Returns (nil, nil) when deploy.toml does not exist.
func loadDeployFile(projectRoot string) (*config.DeployFileConfig, error) {
	path := filepath.Join(projectRoot, DeployFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.DeployFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DeployFileName, err)
	}

	// Expand environment variables in secrets and endpoints
	for name, acct := range cfg.Accounts {
		acct.PrivateKey = os.ExpandEnv(acct.PrivateKey)
		acct.Keystore = os.ExpandEnv(acct.Keystore)
		acct.Password = os.ExpandEnv(acct.Password)
		acct.Address = os.ExpandEnv(acct.Address)
		if acct.Keystore != "" && !filepath.IsAbs(acct.Keystore) {
			acct.Keystore = filepath.Join(projectRoot, acct.Keystore)
		}
		cfg.Accounts[name] = acct
	}
	for name, network := range cfg.Networks {
		if envVar, ok := DetectEnvVar(network.RPCURL); ok {
			network.RPCURLEnv = envVar
		}
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		cfg.Networks[name] = network
	}

	return &cfg, nil
}
