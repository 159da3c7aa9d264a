package config

// AccountType selects how an account's key is loaded
type AccountType string

const (
	AccountTypePrivateKey AccountType = "private_key"
	AccountTypeKeystore   AccountType = "keystore"
)

// AccountConfig represents a named signing entity in [accounts.*] sections.
type AccountConfig struct {
	Type       AccountType `toml:"type"`
	PrivateKey string      `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	Keystore   string      `toml:"keystore,omitempty"`    // path to a go-ethereum keystore JSON file
	Password   string      `toml:"password,omitempty"`    //nolint:gosec // holds env var reference
	Address    string      `toml:"address,omitempty"`     // optional, checked against the loaded key
}

// NetworkConfig represents a [networks.*] section in deploy.toml.
type NetworkConfig struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id,omitempty"`

	// RPCURLEnv names the variable when rpc_url is a bare ${VAR} reference
	RPCURLEnv string `toml:"-"`
}

// DeployFileConfig represents the sections of deploy.toml. Top-level
// network, contract and output keys are read through viper.
type DeployFileConfig struct {
	ArtifactDirs []string                 `toml:"artifact_dirs,omitempty"`
	Networks     map[string]NetworkConfig `toml:"networks"`
	Accounts     map[string]AccountConfig `toml:"accounts"`
}
