package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"pallet-returns-dashboard/config"
	"pallet-returns-dashboard/internal/database"
	"pallet-returns-dashboard/internal/logger"
	"pallet-returns-dashboard/internal/store"
)

var configDir string

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Pallet return dashboard server",
		SilenceUsage:  true,
		SilenceErrors: true,
		// chạy "api" không có subcommand tương đương "api serve"
		RunE: serve.RunE,
	}
	cmd.PersistentFlags().StringVar(&configDir, "config", "./config", "directory containing config.yaml")

	cmd.AddCommand(serve)
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	log    *logrus.Logger
	client *mongo.Client
	store  *store.ReturnStore
}

// bootstrap đọc .env và config, rồi mở kết nối MongoDB duy nhất của process.
func bootstrap(ctx context.Context) (*app, error) {
	// .env là tùy chọn; biến môi trường thật vẫn được ưu tiên.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log)

	client, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	log.WithField("db", cfg.Mongo.DBName).Info("Connected to MongoDB")

	coll := database.ReturnsCollection(client, cfg.Mongo)
	if err := database.EnsureIndexes(ctx, coll, cfg.Mongo.UniqueOrderID); err != nil {
		// existing duplicates block a unique index; keep serving without it
		log.WithError(err).Warn("Could not create orderId index")
	}

	return &app{cfg: cfg, log: log, client: client, store: store.NewReturnStore(coll)}, nil
}

func (a *app) close() {
	if err := a.client.Disconnect(context.Background()); err != nil {
		a.log.WithError(err).Warn("Failed to disconnect from MongoDB")
	}
}
