package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactDirs []string // absolute, searched in order

	// Deployment settings
	ContractName string
	OutputPath   string // absolute

	// Context settings
	NetworkName string // may be empty when only one network is configured

	// Execution settings
	Debug   bool
	Timeout time.Duration // 0 waits for confirmation indefinitely

	// Config source tracking
	ConfigSource string // "deploy.toml" or "env"

	// Resolved configurations
	Networks map[string]Network // keyed by network name
	Accounts map[string]AccountConfig
}

// Network represents network configuration
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId,omitempty"` // 0 accepts whatever the node reports

	RPCURLEnv string `json:"rpcUrlEnv,omitempty"`
}
