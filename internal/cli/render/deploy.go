package render

import (
	"fmt"
	"io"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// DeployRenderer renders the result of a deployment
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderDeployment prints the single success line. It stays uncolored since
// scripts read it.
func (r *DeployRenderer) RenderDeployment(result *usecase.DeployContractResult) error {
	_, err := fmt.Fprintf(r.out, "Contract deployed to %s\n", result.Deployment.AddressHex())
	return err
}
