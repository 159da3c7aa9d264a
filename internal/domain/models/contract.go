package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract represents a compiled contract discovered in the artifacts tree
type Contract struct {
	Name         string    `json:"name"`
	SourceName   string    `json:"sourceName"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// BytecodeObject represents creation or runtime bytecode in an artifact.
// Hardhat stores it as a plain hex string, Foundry as {"object": "0x..."}.
type BytecodeObject struct {
	Object         string         `json:"object"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Object)
	}
	type plain BytecodeObject
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = BytecodeObject(p)
	return nil
}

// Empty reports whether there is no deployable code (interfaces, abstract contracts)
func (b BytecodeObject) Empty() bool {
	return b.Object == "" || b.Object == "0x"
}

// Artifact represents a Hardhat or Foundry compilation artifact
type Artifact struct {
	Format           string          `json:"_format,omitempty"`
	ContractName     string          `json:"contractName,omitempty"`
	SourceName       string          `json:"sourceName,omitempty"`
	ABI              json.RawMessage `json:"abi"`
	Bytecode         BytecodeObject  `json:"bytecode"`
	DeployedBytecode BytecodeObject  `json:"deployedBytecode"`
	Metadata         struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// ParseABI decodes the artifact ABI
func (a *Artifact) ParseABI() (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return &parsed, nil
}

// CreationCode decodes the creation bytecode
func (a *Artifact) CreationCode() ([]byte, error) {
	if a.Bytecode.Empty() {
		return nil, fmt.Errorf("artifact has no creation bytecode")
	}
	if strings.Contains(a.Bytecode.Object, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	obj := a.Bytecode.Object
	if !strings.HasPrefix(obj, "0x") {
		obj = "0x" + obj
	}
	code, err := hexutil.Decode(obj)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return code, nil
}
