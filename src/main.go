package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BielosX/wombat/pokedex/src/config"
	"github.com/BielosX/wombat/pokedex/src/export"
	"github.com/BielosX/wombat/pokedex/src/httpreq"
	"github.com/BielosX/wombat/pokedex/src/logger"
	"github.com/BielosX/wombat/pokedex/src/metrics"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/s3"
	"github.com/BielosX/wombat/pokedex/src/server"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
)

func newPokeClient(cfg *config.Config, m *metrics.Metrics, sugar *zap.SugaredLogger) *pokeapi.Client {
	transport := httpreq.NewClient(sugar,
		httpreq.WithTimeout(cfg.HTTPTimeout),
		httpreq.WithMetrics(m))
	client := pokeapi.NewClient(transport, cfg.BaseUrl, sugar)
	sugar.Infow("PokeAPI client ready", "baseUrl", client.BaseUrl(), "timeout", transport.Timeout())
	return client
}

func scheduleHandler(sugar *zap.SugaredLogger) func(export.ScheduleRequest) ([]export.Schedule, error) {
	return func(request export.ScheduleRequest) ([]export.Schedule, error) {
		sugar.Infof("Starting Schedule Tasks Handler, pageSize: %d, startOffset: %d, pageCount: %d",
			request.PageSize,
			request.StartOffset,
			request.PageCount)
		return export.ScheduleTasks(request), nil
	}
}

func run(sugar *zap.SugaredLogger, cfg *config.Config) error {
	m := metrics.NewMetrics()
	switch cfg.Handler {
	case "scraper":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return fmt.Errorf("load SDK config: %w", err)
		}
		exporter := export.NewExporter(newPokeClient(cfg, m, sugar), s3.NewClient(awsCfg), cfg.BucketName, sugar)
		lambda.Start(exporter.Run)
	case "scheduler":
		lambda.Start(scheduleHandler(sugar))
	case "server", "":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(newPokeClient(cfg, m, sugar), m, sugar).Run(ctx, cfg.ServerAddr)
	default:
		return fmt.Errorf("unknown handler %q", cfg.Handler)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(sugar)

	if err := run(sugar, cfg); err != nil {
		sugar.Fatalf("Handler %s failed: %s", cfg.Handler, err)
	}
}
