//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/adapters"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/config"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/logging"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListNetworks,
		usecase.NewListContracts,

		// App
		NewApp,
	)
	return nil, nil
}
