package models

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Signer is an identity able to authorize transactions
type Signer struct {
	Name       string
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}
