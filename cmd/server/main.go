package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/color-notes/internal/api"
	"github.com/evgeniy-krivenko/color-notes/internal/api/health"
	"github.com/evgeniy-krivenko/color-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/color-notes/internal/config"
	"github.com/evgeniy-krivenko/color-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/color-notes/internal/gateway"
	"github.com/evgeniy-krivenko/color-notes/internal/pipeline"
	"github.com/evgeniy-krivenko/color-notes/internal/repository"
	notesusecase "github.com/evgeniy-krivenko/color-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/color-notes/internal/validator"
	"github.com/evgeniy-krivenko/color-notes/pkg/grpcx"
	"github.com/evgeniy-krivenko/color-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/color-notes/pkg/redisstore"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.LogHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	gw, err := gateway.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open gateway: %v", err)
	}
	defer func() {
		if err := gw.Close(); err != nil {
			slogx.Error(context.Background(), "close gateway", slogx.Err(err))
		}
	}()

	if cfg.Database.Migrate {
		if err := gw.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %v", err)
		}
	}

	resolver, err := newResolver(cfg.Auth)
	if err != nil {
		return fmt.Errorf("init identity resolver: %v", err)
	}

	pl, err := pipeline.New(pipeline.NewOptions(resolver, validator.New()))
	if err != nil {
		return fmt.Errorf("init pipeline: %v", err)
	}

	uc, err := notesusecase.New(notesusecase.NewOptions(repository.New(gw)))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	notesSvc, err := notes.New(notes.NewOptions(uc, pl))
	if err != nil {
		return fmt.Errorf("init notes service: %v", err)
	}

	var limiterStorage fiber.Storage
	if cfg.Redis.Addr != "" {
		store, err := redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return fmt.Errorf("connect redis: %v", err)
		}
		defer store.Close()

		limiterStorage = store
	}

	app, err := api.NewApp(api.NewOptions(
		[]api.Router{notesSvc},
		gw,
		api.WithBodyLimit(cfg.HTTP.BodyLimit),
		api.WithCorsOrigins(cfg.HTTP.CORSOrigins),
		api.WithRateLimit(cfg.HTTP.RateLimit),
		api.WithRateWindow(cfg.HTTP.RateWindow),
		api.WithLimiterStorage(limiterStorage),
	))
	if err != nil {
		return fmt.Errorf("init http app: %v", err)
	}

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		app,
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	healthSvc, err := health.New(health.NewOptions(gw, health.WithInterval(cfg.GRPC.HealthInterval)))
	if err != nil {
		return fmt.Errorf("init health service: %v", err)
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(healthSvc),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithReflection(cfg.GRPC.Reflection),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	slogx.Info(ctx, "starting color notes",
		slog.String("driver", gw.Driver()),
		slog.String("auth", cfg.Auth.Mode),
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return healthSvc.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

func newResolver(cfg config.AuthConfig) (pipeline.IdentityResolver, error) {
	if cfg.Mode == config.AuthModeJWT {
		return pipeline.NewJWTResolver(cfg.JWTSecret)
	}

	return pipeline.NewHeaderResolver(cfg.AccountHeader, cfg.UserHeader), nil
}
