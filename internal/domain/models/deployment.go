package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// DeploymentStatus tracks a deployment handle from submission to confirmation
type DeploymentStatus string

const (
	DeploymentStatusPending   DeploymentStatus = "PENDING"
	DeploymentStatusConfirmed DeploymentStatus = "CONFIRMED"
)

// Deployment represents a single contract creation transaction
type Deployment struct {
	ContractName string           `json:"contractName"`
	ChainID      uint64           `json:"chainId"`
	Deployer     common.Address   `json:"deployer"`
	TxHash       common.Hash      `json:"txHash"`
	Address      common.Address   `json:"address"`
	BlockNumber  uint64           `json:"blockNumber,omitempty"`
	GasUsed      uint64           `json:"gasUsed,omitempty"`
	Status       DeploymentStatus `json:"status"`
}

// IsConfirmed reports whether the deployment has been mined successfully
func (d *Deployment) IsConfirmed() bool {
	return d.Status == DeploymentStatusConfirmed
}

// AddressHex returns the EIP-55 checksummed contract address
func (d *Deployment) AddressHex() string {
	return d.Address.Hex()
}
