package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/models"
)

// DeployContractParams contains parameters for a deployment run.
// Empty fields fall back to the runtime configuration.
type DeployContractParams struct {
	ContractName string
	OutputPath   string
}

// DeployContractResult contains the confirmed deployment
type DeployContractResult struct {
	Deployment *models.Deployment
	Signer     *models.Signer
	Network    *config.Network
	OutputPath string
}

// DeployContract deploys one contract with the first signer and records its address
type DeployContract struct {
	config    *config.RuntimeConfig
	signers   SignerProvider
	networks  NetworkResolver
	contracts ContractRepository
	deployer  ContractDeployer
	writer    AddressWriter
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	signers SignerProvider,
	networks NetworkResolver,
	contracts ContractRepository,
	deployer ContractDeployer,
	writer AddressWriter,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		signers:   signers,
		networks:  networks,
		contracts: contracts,
		deployer:  deployer,
		writer:    writer,
		progress:  progress,
		log:       log,
	}
}

// Run executes the deployment. Every failure is a *domain.DeployError and
// nothing is written unless the deployment was confirmed.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	contractName := params.ContractName
	if contractName == "" {
		contractName = uc.config.ContractName
	}
	outputPath := params.OutputPath
	if outputPath == "" {
		outputPath = uc.config.OutputPath
	}
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(uc.config.ProjectRoot, outputPath)
	}

	if uc.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.config.Timeout)
		defer cancel()
	}

	uc.log.Debug("starting deployment",
		"contract", contractName,
		"output", outputPath,
		"config", uc.config.ConfigSource,
		"project", uc.config.ProjectRoot,
	)

	// Acquire signer
	uc.report(ctx, domain.StageAcquireSigner, "Loading signers", false)
	signers, err := uc.signers.Signers(ctx)
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrEnvironment, domain.StageAcquireSigner, err)
	}
	if len(signers) == 0 {
		return nil, uc.fail(ctx, domain.ErrEnvironment, domain.StageAcquireSigner,
			errors.New("no signers configured: set PRIVATE_KEY or add [accounts] to deploy.toml"))
	}
	signer := signers[0]
	uc.log.Debug("using signer", "name", signer.Name, "address", signer.Address.Hex())

	network, err := uc.networks.ResolveNetwork(ctx, uc.config.NetworkName)
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrEnvironment, domain.StageAcquireSigner, err)
	}
	uc.log.Debug("resolved network", "name", network.Name, "chainId", network.ChainID)

	// Resolve factory
	uc.report(ctx, domain.StageResolveArtifact, fmt.Sprintf("Resolving artifact %s", contractName), false)
	contract, err := uc.contracts.GetContract(ctx, domain.ParseContractQuery(contractName))
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrArtifactNotFound, domain.StageResolveArtifact, err)
	}
	uc.log.Debug("resolved artifact", "contract", contract.Name, "path", contract.ArtifactPath)

	// Submit deployment
	uc.report(ctx, domain.StageSubmit, fmt.Sprintf("Deploying %s to %s", contract.Name, network.Name), true)
	chainID, err := uc.deployer.Connect(ctx, network)
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrSubmission, domain.StageSubmit, err)
	}
	defer uc.deployer.Close()

	deployment, err := uc.deployer.Deploy(ctx, signer, contract, signer.Address)
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrSubmission, domain.StageSubmit, err)
	}
	uc.log.Debug("deployment submitted", "tx", deployment.TxHash.Hex(), "chainId", chainID)

	// Await confirmation
	uc.report(ctx, domain.StageConfirm, fmt.Sprintf("Waiting for %s", deployment.TxHash.Hex()), true)
	err = uc.deployer.WaitForDeployment(ctx, deployment)
	uc.report(ctx, domain.StageConfirm, "", false)
	if err != nil {
		return nil, uc.fail(ctx, domain.ErrConfirmation, domain.StageConfirm, err)
	}
	if !deployment.IsConfirmed() {
		return nil, uc.fail(ctx, domain.ErrConfirmation, domain.StageConfirm,
			fmt.Errorf("deployment %s not confirmed", deployment.TxHash.Hex()))
	}

	// Persist
	if err := uc.writer.WriteAddress(ctx, outputPath, deployment.Address); err != nil {
		return nil, uc.fail(ctx, domain.ErrIO, domain.StagePersist, err)
	}

	uc.progress.Info(fmt.Sprintf("%s confirmed in block %d (tx %s)",
		deployment.ContractName, deployment.BlockNumber, deployment.TxHash.Hex()))
	uc.log.Info("deployment confirmed",
		"contract", deployment.ContractName,
		"address", deployment.AddressHex(),
		"tx", deployment.TxHash.Hex(),
		"block", deployment.BlockNumber,
	)

	return &DeployContractResult{
		Deployment: deployment,
		Signer:     signer,
		Network:    network,
		OutputPath: outputPath,
	}, nil
}

// fail reports the failed stage to the progress sink and classifies err
func (uc *DeployContract) fail(ctx context.Context, kind error, stage domain.DeployStage, err error) *domain.DeployError {
	uc.report(ctx, stage, "", false)
	uc.progress.Error(fmt.Sprintf("✗ %s failed", stage))
	return domain.NewDeployError(kind, stage, err)
}

func (uc *DeployContract) report(ctx context.Context, stage domain.DeployStage, message string, spinner bool) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   string(stage),
		Message: message,
		Spinner: spinner,
	})
}
