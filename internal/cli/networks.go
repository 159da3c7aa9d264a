package cli

import (
	"github.com/spf13/cobra"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli/render"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the networks a deployment can target.

Networks come from the [networks] section of deploy.toml, the [rpc_endpoints]
section of foundry.toml and the RPC_URL environment variable. RPC URLs are
masked since they usually embed API keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	return cmd
}
