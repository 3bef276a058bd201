package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/polkiloo/foodorder/internal/adapter/sms"
	"github.com/polkiloo/foodorder/internal/config"
	"github.com/polkiloo/foodorder/internal/logger"
	"github.com/polkiloo/foodorder/internal/metrics"
	"github.com/polkiloo/foodorder/internal/storage/postgres"
	"github.com/polkiloo/foodorder/internal/usecase"
)

type rootOptions struct {
	databaseURI string
	logLevel    string
}

// seederFactory opens the backing store and returns a seeder with a cleanup
// function. Tests swap it for an in-memory one.
type seederFactory func(ctx context.Context, opts rootOptions, out io.Writer) (*Seeder, func(), error)

func newRootCommand(lookup func(string) (string, bool)) *cobra.Command {
	return newRootCommandWith(lookup, openSeeder)
}

func newRootCommandWith(lookup func(string) (string, bool), open seederFactory) *cobra.Command {
	opts := rootOptions{logLevel: "info"}
	if v, ok := lookup("DATABASE_URI"); ok {
		opts.databaseURI = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		opts.logLevel = v
	}

	root := &cobra.Command{
		Use:           "foodorder-seed",
		Short:         "Load sample data into a foodorder database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.databaseURI == "" {
				return errors.New("database URI is required: set --database-uri or DATABASE_URI")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.databaseURI, "database-uri", "d", opts.databaseURI, "PostgreSQL connection string")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")

	var force bool
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Create the sample menu when the menu is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, closeFn, err := open(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := seeder.SeedMenu(cmd.Context(), force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d menu items created\n", created)
			return nil
		},
	}
	menuCmd.Flags().BoolVar(&force, "force", false, "Add the sample items even if the menu is not empty")

	var count int
	ordersCmd := &cobra.Command{
		Use:   "demo-orders",
		Short: "Place demo orders against the current menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, closeFn, err := open(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeFn()

			placed, err := seeder.SeedOrders(cmd.Context(), count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d demo orders placed\n", len(placed))
			return nil
		},
	}
	ordersCmd.Flags().IntVarP(&count, "count", "n", 4, "Number of orders to place")

	root.AddCommand(menuCmd, ordersCmd)
	return root
}

// openSeeder wires the real use cases over PostgreSQL. Notifications are
// disabled so demo customers never receive texts.
func openSeeder(ctx context.Context, opts rootOptions, out io.Writer) (*Seeder, func(), error) {
	cfg := &config.Config{
		DatabaseURI:  opts.databaseURI,
		LogLevel:     opts.logLevel,
	}
	log := logger.New(cfg)

	storage, err := postgres.New(ctx, cfg.DatabaseURI, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	menu := usecase.NewMenuUseCase(storage.Menu(), cfg, log)
	orders := usecase.NewOrderUseCase(
		storage.Orders(),
		sms.NewDisabled(log),
		metrics.New(prometheus.NewRegistry()),
		cfg,
		log,
	)
	return NewSeeder(menu, orders, out, log), storage.Close, nil
}
