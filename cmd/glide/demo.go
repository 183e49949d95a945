package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/glide-ui/glide/internal/config"
	"github.com/glide-ui/glide/pkg/live"
	"github.com/glide-ui/glide/pkg/observe"
	"github.com/glide-ui/glide/pkg/transition"
)

func demoCmd() *cobra.Command {
	var (
		addr    string
		dir     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the transition demo server",
		Long: `Serve an interactive demo page. Items are added and removed in the
browser while all transition choreography runs on the server; class
changes are streamed over a WebSocket. Prometheus metrics are exposed
on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			metrics := observe.NewMetrics()
			srv := live.New(live.Config{
				Transition: cfg.GroupConfig(),
				Observer: transition.MultiObserver{
					metrics,
					observe.NewTraces(),
				},
				Logger: logger,
			})

			r := chi.NewRouter()
			r.Mount("/", srv.Router())
			r.Handle("/metrics", promhttp.Handler())

			logger.Info("demo server listening",
				"addr", cfg.Addr,
				"transition", cfg.Transition.Name)
			printBanner()
			fmt.Printf("\n  Demo:    http://%s/\n  Metrics: http://%s/metrics\n\n", cfg.Addr, cfg.Addr)

			return http.ListenAndServe(cfg.Addr, r)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides glide.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory containing glide.json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
