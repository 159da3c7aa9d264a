package cli

import (
	"github.com/spf13/cobra"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli/render"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "List deployable contracts",
		Long: `List the compiled contracts found in the artifact dirs (artifacts/ for
Hardhat, out/ for Foundry, or artifact_dirs in deploy.toml). Interfaces and
abstract contracts are left out. The contract a deployment would use is
marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListContracts.Run(cmd.Context(), usecase.ListContractsParams{})
			if err != nil {
				return err
			}

			return render.NewContractsRenderer(cmd.OutOrStdout()).RenderContractsList(result)
		},
	}

	return cmd
}
