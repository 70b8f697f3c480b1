//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"socialnino/internal"
	"socialnino/internal/controllers"
	"socialnino/internal/providers"
	"socialnino/internal/services"
	"socialnino/internal/storage"
	"socialnino/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewSessionProvider,

		storage.NewZstdCompressor,
		storage.NewStore,
		storage.NewRegistry,
		wire.Bind(new(providers.CollectionStats), new(*storage.Registry)),

		services.NewPostCollection,
		services.NewPersonCollection,
		services.NewStoryCollection,
		services.NewNotificationCollection,
		services.NewProfileService,
		services.NewFeedService,
		services.NewEngagementService,
		services.NewPostService,
		services.NewStoryService,
		services.NewNotificationService,
		services.NewMessagingService,
		services.NewPointsService,
		services.NewRankingService,
		services.NewAuthService,
		services.NewScheduler,

		controllers.NewFeedController,
		controllers.NewPostsController,
		controllers.NewMessagesController,
		controllers.NewRankingController,
		controllers.NewPointsController,
		controllers.NewProfileController,
		controllers.NewAuthController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
