package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the sample document in a browser",
		Long: `Serve runs the preview server on the sample document. The page is
re-rendered on every request; /metrics exposes Prometheus metrics and
/__reload carries live-reload notifications.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := server.DefaultConfig()
			if configPath != "" {
				var err error
				config, err = server.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
			}
			if addr != "" {
				config.Address = addr
			}

			if title == "" {
				title = "domkit preview"
			}
			doc, err := sampleDocument(title)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := server.New(config, func() *dom.Document { return doc })
			slog.Info("starting preview", "address", config.Address)
			if err := s.Start(ctx); err != nil {
				return fmt.Errorf("preview server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to domkit.yaml")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title")

	return cmd
}
