package domain

import (
	"fmt"
	"strings"
)

// ContractQuery represents a query for finding contracts
type ContractQuery struct {
	// Name is the contract name (e.g., "PrivateNFT")
	Name string
	// SourceName optionally pins the source file (e.g., "contracts/PrivateNFT.sol")
	SourceName string
}

// ParseContractQuery accepts "Name" or "path/File.sol:Name"
func ParseContractQuery(ref string) ContractQuery {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ContractQuery{SourceName: ref[:i], Name: ref[i+1:]}
	}
	return ContractQuery{Name: ref}
}

// String returns a string representation of the query
func (cq ContractQuery) String() string {
	if cq.SourceName == "" {
		return cq.Name
	}
	return fmt.Sprintf("%s:%s", cq.SourceName, cq.Name)
}
