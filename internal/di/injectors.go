//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"pad/internal"
	"pad/internal/controllers"
	"pad/internal/loader"
	"pad/internal/providers"
	"pad/internal/services"
	"pad/internal/store"
	"pad/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		loader.NewPresenceLoader,
		loader.NewUsersLoader,
		store.NewDataStore,
		services.NewPresenceService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
