package app

import (
	"log/slog"

	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	DeployContract *usecase.DeployContract
	ListNetworks   *usecase.ListNetworks
	ListContracts  *usecase.ListContracts
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployContract *usecase.DeployContract,
	listNetworks *usecase.ListNetworks,
	listContracts *usecase.ListContracts,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         log,
		DeployContract: deployContract,
		ListNetworks:   listNetworks,
		ListContracts:  listContracts,
	}, nil
}
