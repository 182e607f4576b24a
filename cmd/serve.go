package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vislib-axis/config"
	"vislib-axis/internal/database"
	"vislib-axis/internal/metrics"
	"vislib-axis/internal/server"
)

const metricsSaveInterval = 5 * time.Minute

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0, "HTTP port, overrides http_port")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve axes, presets, metrics and health over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			config.Set("http_port", port)
		}

		if err := database.InitDB(config.GetString("db_path")); err != nil {
			return err
		}
		defer database.CloseDB()

		m := metrics.New(prometheus.DefaultRegisterer)
		if err := m.Load(); err != nil {
			log.Errorf("Failed to load metrics: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			ticker := time.NewTicker(metricsSaveInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := m.Save(); err != nil {
						log.Errorf("Failed to save metrics: %v", err)
					}
				}
			}
		}()

		s := server.New(server.Options{
			Metrics:   m,
			Gatherer:  prometheus.DefaultGatherer,
			CacheTTL:  time.Duration(config.GetInt("cache_ttl")) * time.Second,
			Formatter: formatter(),
			Margin:    margin(),
			Painter:   painterOption(),
		})
		err := s.ListenAndServe(ctx, config.GetInt("http_port"))

		if saveErr := m.Save(); saveErr != nil {
			log.Errorf("Failed to save metrics: %v", saveErr)
		}
		log.Info("Metrics saved, shutting down...")
		return err
	},
}
