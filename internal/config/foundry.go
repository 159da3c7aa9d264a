package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// foundryTOML is the subset of foundry.toml the deployer reads
type foundryTOML struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}

// loadEnvFiles loads .env files from the project root. Variables already
// present in the process environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryRPCEndpoints returns the expanded [rpc_endpoints] of foundry.toml.
// Returns (nil, nil) when foundry.toml does not exist.
func loadFoundryRPCEndpoints(projectRoot string) (map[string]string, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return nil, nil
	}

	var raw foundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	endpoints := make(map[string]string, len(raw.RpcEndpoints))
	for name, url := range raw.RpcEndpoints {
		endpoints[name] = os.ExpandEnv(url)
	}
	return endpoints, nil
}
