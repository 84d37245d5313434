package main

import (
	"context"
	"log/slog"
	"os"

	"roster/config"
	"roster/internal/delivery"
	"roster/internal/delivery/api"
	apimiddleware "roster/internal/delivery/api/middleware"
	"roster/internal/delivery/api/router/handler"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/auth"
	"roster/internal/infra/cache"
	logs "roster/internal/infra/log"
	"roster/internal/infra/metrics"
	"roster/internal/infra/persistence/memory"
	"roster/internal/infra/persistence/postgres"
	"roster/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
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
		metrics.New,
		cache.NewClient,
	)
}

type storesParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	RedisClient *redis.Client `optional:"true"`
}

type stores struct {
	fx.Out

	UserRepo     repository.UserRepository
	AntiHeroRepo repository.AntiHeroRepository
	TxManager    repository.TransactionManager
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStores,
		),
	)
}

// newStores selects the storage driver from config. Anti-hero lookups outside
// a transaction go through the Redis cache when it is enabled.
func newStores(params storesParams) (stores, error) {
	var out stores

	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		users := memory.NewUserRepository()
		antiHeroes := memory.NewAntiHeroRepository()
		out = stores{
			UserRepo:     users,
			AntiHeroRepo: antiHeroes,
			TxManager:    memory.NewTransactionManager(users, antiHeroes),
		}
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return stores{}, err
		}
		out = stores{
			UserRepo:     postgres.NewUserRepository(db),
			AntiHeroRepo: postgres.NewAntiHeroRepository(db),
			TxManager:    postgres.NewTransactionManager(db),
		}
	default:
		return stores{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}

	out.AntiHeroRepo = cache.NewCachedAntiHeroRepository(out.AntiHeroRepo, params.RedisClient, params.Config, params.Logger)
	params.Logger.Info("Storage ready", slog.String("driver", params.Config.Storage.Driver))

	return out, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSaltedHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserResourceService,
			impl.NewAntiHeroService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewAntiHeroHandler,
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

func startServer(params startServerParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
