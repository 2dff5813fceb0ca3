package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/delivery/api"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"
	"portfolio/internal/domain/service"
	"portfolio/internal/infra/ai"
	"portfolio/internal/infra/auth"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/metrics"
	"portfolio/internal/infra/notification"
	"portfolio/internal/infra/persistence/database"
	"portfolio/internal/infra/pubsub"
	"portfolio/internal/infra/qrcode"
	"portfolio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		database.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.ActivityRecorder)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewUserRepository,
			database.NewProjectRepository,
			database.NewBlogRepository,
			database.NewSkillRepository,
			database.NewContactRepository,
			database.NewAnalyticsRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			notification.NewNotificationService,
			qrcode.NewQRCodeService,
			ai.NewChatService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialStore,
			impl.NewAuthService,
			impl.NewProjectService,
			impl.NewBlogService,
			impl.NewSkillService,
			impl.NewContactService,
			impl.NewAnalyticsService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProjectHandler,
			handler.NewBlogHandler,
			handler.NewSkillHandler,
			handler.NewContactHandler,
			handler.NewAnalyticsHandler,
			handler.NewAIHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
