package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters/progress"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/app"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/cli/render"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/logging"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Running it with no subcommand deploys
// the configured contract.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a compiled contract and record its address",
		Long: `Deploy the compiled PrivateNFT contract (or --contract) with the first
configured signer, wait for the transaction to be confirmed, write the
contract address to contract.txt (or --output) and print it.

Signers and networks come from deploy.toml, or from the PRIVATE_KEY and
RPC_URL environment variables (.env is loaded automatically).`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			v := config.SetupViper(projectRoot, cmd)

			level := logging.Level(v.GetBool("debug"), os.Getenv(logging.LevelEnv))
			appInstance, err := app.InitApp(v, newProgressSink(os.Stderr, level))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (from deploy.toml or foundry.toml)")

	// Deploy flags
	rootCmd.Flags().String("contract", config.DefaultContractName, "Contract to deploy, as Name or path/To.sol:Name")
	rootCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "File that receives the deployed address")
	rootCmd.Flags().Duration("timeout", 0, "Abort if the deployment is not confirmed in time (0 waits forever)")

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewContractsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink draws a spinner on stderr unless stderr is redirected or
// debug logs would interleave with it
func newProgressSink(stderr *os.File, level slog.Level) usecase.ProgressSink {
	if useSpinner(isTerminal(stderr), level) {
		return progress.NewSpinnerProgress(stderr)
	}
	return progress.NewNopSink()
}

func useSpinner(terminal bool, level slog.Level) bool {
	return terminal && level > slog.LevelDebug
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	// Flags are bound into the runtime config, so the params stay empty
	result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{})
	if err != nil {
		return err
	}

	return render.NewDeployRenderer(cmd.OutOrStdout()).RenderDeployment(result)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
