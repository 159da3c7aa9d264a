package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

const (
	// DefaultContractName is deployed when nothing else is configured
	DefaultContractName = "PrivateNFT"
	// DefaultOutputPath receives the deployed address
	DefaultOutputPath = "contract.txt"
	// DefaultNetworkName is used for the RPC_URL fallback network
	DefaultNetworkName = "default"
	// DefaultAccountName is used for the PRIVATE_KEY fallback account
	DefaultAccountName = "deployer"
)

// DefaultArtifactDirs are searched when deploy.toml does not set artifact_dirs
var DefaultArtifactDirs = []string{"artifacts", "out"}

// projectMarkers identify a project root
var projectMarkers = []string{DeployFileName, "hardhat.config.ts", "hardhat.config.js", "foundry.toml"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:  projectRoot,
		ContractName: v.GetString("contract"),
		OutputPath:   resolvePath(projectRoot, v.GetString("output")),
		NetworkName:  v.GetString("network"),
		Debug:        v.GetBool("debug"),
		Timeout:      v.GetDuration("timeout"),
		ConfigSource: "env",
		Networks:     make(map[string]config.Network),
		Accounts:     make(map[string]config.AccountConfig),
	}

	deployFile, err := loadDeployFile(projectRoot)
	if err != nil {
		return nil, err
	}

	artifactDirs := DefaultArtifactDirs
	if deployFile != nil {
		cfg.ConfigSource = DeployFileName
		for name, nc := range deployFile.Networks {
			cfg.Networks[name] = config.Network{Name: name, RPCURL: nc.RPCURL, ChainID: nc.ChainID, RPCURLEnv: nc.RPCURLEnv}
		}
		for name, acct := range deployFile.Accounts {
			cfg.Accounts[name] = acct
		}
		if len(deployFile.ArtifactDirs) > 0 {
			artifactDirs = deployFile.ArtifactDirs
		}
	}
	for _, dir := range artifactDirs {
		cfg.ArtifactDirs = append(cfg.ArtifactDirs, resolvePath(projectRoot, dir))
	}

	// foundry.toml endpoints never shadow deploy.toml networks
	endpoints, err := loadFoundryRPCEndpoints(projectRoot)
	if err != nil {
		return nil, err
	}
	for name, url := range endpoints {
		if _, exists := cfg.Networks[name]; !exists {
			cfg.Networks[name] = config.Network{Name: name, RPCURL: url}
		}
	}

	// Hardhat-style environment fallbacks
	if rpcURL := os.Getenv("RPC_URL"); rpcURL != "" {
		if _, exists := cfg.Networks[DefaultNetworkName]; !exists {
			cfg.Networks[DefaultNetworkName] = config.Network{Name: DefaultNetworkName, RPCURL: rpcURL}
		}
	}
	if len(cfg.Accounts) == 0 {
		if pk := os.Getenv("PRIVATE_KEY"); pk != "" {
			cfg.Accounts[DefaultAccountName] = config.AccountConfig{
				Type:       config.AccountTypePrivateKey,
				PrivateKey: pk,
			}
		}
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to the first directory
// holding deploy.toml, a hardhat config or foundry.toml. Falls back to the
// working directory.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	// .env must be loaded before viper reads DEPLOY_* variables
	loadEnvFiles(projectRoot)

	v := viper.New()

	// Top-level keys of deploy.toml participate in viper precedence
	v.SetConfigName("deploy")
	v.SetConfigType("toml")
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix("DEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("contract", DefaultContractName)
	v.SetDefault("output", DefaultOutputPath)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(f.Name, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func resolvePath(projectRoot, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}
